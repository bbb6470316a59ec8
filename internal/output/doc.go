// Package output provides styled terminal output for the lemma commands.
//
// # Overview
//
// A Printer writes to any io.Writer. Styling is done with lipgloss through a
// renderer bound to that writer, so a terminal gets colour while a pipe, file,
// or buffer gets plain text. Reports are therefore byte-identical across runs
// whenever the destination is not a terminal.
//
// # Usage
//
//	p := output.NewPrinter(os.Stdout)
//	p.Title("Commutative Algebra Theorem Verification")
//	p.Line("Module: M")
//	p.Success("Theorem holds")
//	p.Failure("Counterexample found")
//
// # Verbose Mode
//
// Verbose lines only print when the printer was created with verbose mode:
//
//	p := output.NewPrinter(os.Stdout, output.WithVerbose(true))
//	p.Verbose("Local ring at m1")
//
// # Styling
//
//   - Title: bold, underlined with "="
//   - Success: ✓ green bold
//   - Failure: ✗ red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
