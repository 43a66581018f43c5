// Package usage renders the dispatcher's help text and fatal diagnostics.
// Help goes to stdout; when stdout is a terminal the Markdown source is
// rendered with glamour, otherwise it is printed plain so scripts can
// still capture it.
package usage

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Text is the full usage document. Subcommand-backend combinations outside
// the table are answered with this text and exit status 0: asking for an
// impossible combination is a help request, not an error.
const Text = "# kevm\n\n" +
	"Dispatch to the EVM semantics toolchain backends.\n\n" +
	"## Usage\n\n" +
	"    kevm run        [--backend (ocaml|java|llvm|haskell)] <pgm>  <K args>*\n" +
	"    kevm interpret  [--backend (ocaml|llvm)]              <pgm>\n" +
	"    kevm kast       [--backend (ocaml|java|llvm|haskell)] <pgm>  [output-mode] <K args>*\n" +
	"    kevm prove      [--backend (java|haskell)]            <spec> <K args>*\n" +
	"    kevm klab-run                                         <spec> <K args>*\n" +
	"    kevm klab-prove                                       <spec> <K args>*\n" +
	"    kevm version\n\n" +
	"## Subcommands\n\n" +
	"- `run`: execute a program directly via krun.\n" +
	"- `interpret`: execute a program with the backend interpreter binary\n" +
	"  (fast path, output surfaced only on failure).\n" +
	"- `kast`: convert a program to kast/kore format.\n" +
	"- `prove`: check a specification against the VERIFICATION module.\n" +
	"- `klab-run`, `klab-prove`: record a state log on the java backend,\n" +
	"  then explore it with the klab debugger.\n\n" +
	"## Environment\n\n" +
	"- `MODE`: semantic execution mode (default `NORMAL`).\n" +
	"- `SCHEDULE`: fee schedule (default `BYZANTIUM`).\n" +
	"- `KEVM_BUILD_DIR`: build-output root (default `./.build`).\n" +
	"- `K_RELEASE`: override the K release directory.\n" +
	"- `KLAB_NODE_STACK_SIZE`: stack tuning for the klab debugger.\n"

// Print writes the usage text to w, rendered when w is a terminal.
func Print(w io.Writer) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
			if out, err := r.Render(Text); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, Text)
}

// Fatal writes a fatal diagnostic to w, tinted red when w is a terminal.
func Fatal(w io.Writer, msg string) {
	line := "FATAL: " + msg
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p := termenv.ColorProfile()
		line = termenv.String(line).Foreground(p.Color("#ef4444")).Bold().String()
	}
	fmt.Fprintln(w, line)
}
