package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/extprune/internal/prune"
)

const (
	// ListLimit is the number of files or failures listed before summarizing the rest.
	ListLimit = 10
	// RuleWidth is the width of separator lines.
	RuleWidth = 60
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorYellow = "\033[38;5;220m"
	colorGreen  = "\033[32m"
)

// printer writes user-facing output, colored when writing to a terminal.
type printer struct {
	w     io.Writer
	color bool
}

// newPrinter creates a printer for w. Color is enabled only for terminals.
func newPrinter(w io.Writer) printer {
	f, ok := w.(*os.File)

	return printer{
		w:     w,
		color: ok && isatty.IsTerminal(f.Fd()),
	}
}

// paint wraps s in the given color if color output is enabled.
func (p printer) paint(color, s string) string {
	if !p.color {
		return s
	}

	return color + s + colorReset
}

//nolint:forbidigo // User-facing output
func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

//nolint:forbidigo // User-facing output
func (p printer) println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// yesNo renders a boolean for the header.
func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// verb returns the action word for the current mode.
func verb(dryRun bool) string {
	if dryRun {
		return "Would delete"
	}

	return "Deleted"
}

// PrintHeader outputs the search parameters.
func (p printer) PrintHeader(options prune.Options) {
	p.printf("Search path: %s\n", options.Path)
	p.printf("Extension: %s\n", options.Extension)
	p.printf("Recursive: %s\n", yesNo(options.Recursive))
	p.println(strings.Repeat("-", RuleWidth))
}

// PrintFound outputs the discovery totals and an example listing.
func (p printer) PrintFound(files []string, total int64) {
	p.printf("\nFound %d files, total size: %s (%s bytes)\n",
		len(files), p.paint(colorBold, prune.FormatSize(total)), humanize.Comma(total))

	if len(files) <= ListLimit {
		p.println("\nFiles:")

		for _, f := range files {
			p.printf("  - %s\n", f)
		}

		return
	}

	p.printf("\nFirst %d files:\n", ListLimit)

	for _, f := range files[:ListLimit] {
		p.printf("  - %s\n", f)
	}

	p.printf("  ... and %d more\n", len(files)-ListLimit)
}

// PrintProgress outputs a deletion progress line.
func (p printer) PrintProgress(dryRun bool, done, total int) {
	p.printf("%s %d/%d files...\n", verb(dryRun), done, total)
}

// PrintFailure outputs a single deletion failure as it happens.
func (p printer) PrintFailure(f prune.Failure) {
	p.printf("%s %s - %s\n", p.paint(colorRed, "Failed to delete:"), f.Path, f.Err)
}

// PrintSummary outputs the result of the deletion pass.
func (p printer) PrintSummary(dryRun bool, outcome prune.Outcome) {
	p.println("\n" + strings.Repeat("=", RuleWidth))

	if dryRun {
		p.printf("Would delete %d files, freeing %s\n", outcome.Deleted, p.paint(colorBold, prune.FormatSize(outcome.DeletedBytes)))
	} else {
		p.printf("Deleted %d files, freed %s\n", outcome.Deleted, p.paint(colorBold, prune.FormatSize(outcome.DeletedBytes)))
	}

	if len(outcome.Failures) > 0 {
		p.printf("\n%s %d\n", p.paint(colorRed, "Failed files:"), len(outcome.Failures))
		p.println("Failure details:")

		shown := outcome.Failures
		if len(shown) > ListLimit {
			shown = shown[:ListLimit]
		}

		for _, f := range shown {
			p.printf("  - %s: %s\n", f.Path, f.Err)
		}

		if rest := len(outcome.Failures) - ListLimit; rest > 0 {
			p.printf("  ... and %d more failures\n", rest)
		}
	}

	if dryRun {
		p.printf("\n%s\n", p.paint(colorYellow, "[DRY RUN] No files were actually deleted"))
	} else {
		p.printf("\n%s\n", p.paint(colorGreen, "Done!"))
	}
}

// PrintFreeSpace outputs the free space of the volume holding the target.
func (p printer) PrintFreeSpace(label string, free uint64) {
	p.printf("%s: %s\n", label, humanize.IBytes(free))
}
