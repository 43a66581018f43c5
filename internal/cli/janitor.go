package cli

import (
	"os"
	"sync"
)

// Janitor tracks temporary files that must not outlive the process.
// Scoped owners remove their files with deferred releases on normal and
// error paths; the janitor is the backstop main sweeps before exiting on
// a signal path, so interrupted invocations leave nothing on disk either.
type Janitor struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

// NewJanitor creates an empty janitor.
func NewJanitor() *Janitor {
	return &Janitor{paths: make(map[string]struct{})}
}

// Track registers paths for removal at process exit.
// A nil janitor is a no-op, so library users without a CLI can skip it.
func (j *Janitor) Track(paths ...string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, p := range paths {
		j.paths[p] = struct{}{}
	}
}

// Untrack forgets paths already removed by their owner.
func (j *Janitor) Untrack(paths ...string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, p := range paths {
		delete(j.paths, p)
	}
}

// Sweep removes every tracked path. Removal errors are ignored: the file
// may already be gone, and there is nowhere left to report to.
func (j *Janitor) Sweep() {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for p := range j.paths {
		os.Remove(p)
		delete(j.paths, p)
	}
}
