package toolchain

import (
	"errors"
	"fmt"
)

// ErrRouting signals that the (subcommand, backend) pair has no entry in the
// compatibility matrix. It is not a failure: the CLI answers it with the full
// usage text on stdout and exit status 0.
var ErrRouting = errors.New("no matching subcommand/backend combination")

// FileNotFoundError is fatal: the target file must exist before any tool is
// launched. The CLI reports the message and exits 1.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// UnsupportedBackendError is fatal: the requested operation is not defined
// for the chosen backend (interpret on java/haskell). Exit 1.
type UnsupportedBackendError struct {
	Subcommand Subcommand
	Backend    Backend
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("%s is not supported on the %s backend", e.Subcommand, e.Backend)
}

// ToolFailure records that an external tool ran and exited non-zero.
// The dispatcher's own process exits with the same status, so callers can
// script on the tool's codes. For interpret, Output carries a copy of the
// captured output file for programmatic use; the interpret runner has
// already surfaced it once on the diagnostic stream.
type ToolFailure struct {
	Tool   string
	Status int
	Output []byte
}

func (e *ToolFailure) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Status)
}
