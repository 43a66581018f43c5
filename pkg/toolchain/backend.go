package toolchain

// Backend identifies one of the interchangeable execution engines of the
// K semantics toolchain. Each backend supports a different subset of
// operations (see the dispatch compatibility matrix).
type Backend string

const (
	BackendOCaml   Backend = "ocaml"
	BackendJava    Backend = "java"
	BackendLLVM    Backend = "llvm"
	BackendHaskell Backend = "haskell"
)

// Backends lists every backend the toolchain ships, in the order the
// usage text presents them.
func Backends() []Backend {
	return []Backend{BackendOCaml, BackendJava, BackendLLVM, BackendHaskell}
}

// Known reports whether b names a backend the toolchain ships.
// Unknown names are preserved verbatim (not rejected at parse time) so the
// compatibility matrix stays the single place that decides routing.
func (b Backend) Known() bool {
	switch b {
	case BackendOCaml, BackendJava, BackendLLVM, BackendHaskell:
		return true
	}
	return false
}

func (b Backend) String() string {
	return string(b)
}
