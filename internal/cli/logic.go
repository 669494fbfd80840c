package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/disk"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idelchi/extprune/internal/prune"
)

// ErrDeletionFailed is returned when at least one file could not be deleted.
// The failures have already been reported when it is returned.
var ErrDeletionFailed = errors.New("some files could not be deleted")

// streams holds the command's input and output.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// newLogger returns a development logger writing to w when debug is set,
// and a no-op logger otherwise.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}

// freeSpace returns the free bytes on the volume holding path.
func freeSpace(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("reading disk usage: %w", err)
	}

	return usage.Free, nil
}

// reportFreeSpace prints the volume's free space if enabled. Errors are only logged.
func reportFreeSpace(ctx context.Context, p printer, log *zap.Logger, options prune.Options, label string) {
	if !options.Stats {
		return
	}

	free, err := freeSpace(ctx, options.Path)
	if err != nil {
		log.Debug("skipping free space report", zap.Error(err))

		return
	}

	p.PrintFreeSpace(label, free)
}

func logic(ctx context.Context, options prune.Options, s streams, remover prune.Remover) error {
	log := newLogger(options.Debug, s.err)
	defer log.Sync() //nolint:errcheck // Nothing to do on sync failure

	p := newPrinter(s.out)

	p.PrintHeader(options)
	p.println("Scanning files...")

	files, err := prune.Discover(ctx, options, log, func(found int) {
		p.printf("Found %d files so far...\n", found)
	})
	if err != nil {
		return err
	}

	if len(files) == 0 {
		p.println("No matching files found.")

		return nil
	}

	total, err := prune.TotalSize(files)
	if err != nil {
		return err
	}

	log.Debug("discovery finished",
		zap.Int("files", len(files)),
		zap.String("total", humanize.IBytes(uint64(total))), //nolint:gosec // Size is never negative
	)

	p.PrintFound(files, total)
	reportFreeSpace(ctx, p, log, options, "\nFree space")

	gate := gateFor(options)
	log.Debug("confirmation gate", zap.Stringer("state", gate))

	switch gate {
	case GateDryRun:
		p.printf("\n%s\n", p.paint(colorYellow, "[DRY RUN] The files above would be deleted (nothing will be removed)"))
	case GateAutoConfirmed:
	case GateAwaitingInput:
		p.println("\n" + strings.Repeat("=", RuleWidth))
		p.printf("Delete these files? (yes/no): ")

		ok, err := readConfirmation(s.in)
		if err != nil {
			return err
		}

		if !ok {
			p.println("Operation cancelled.")

			return nil
		}
	}

	p.println("\nDeleting...")

	outcome := prune.Delete(files, options, remover, prune.Hooks{
		Progress: func(done, total int) { p.PrintProgress(options.DryRun, done, total) },
		Failure:  p.PrintFailure,
		Logger:   log,
	})

	p.PrintSummary(options.DryRun, outcome)
	reportFreeSpace(ctx, p, log, options, "Free space")

	if len(outcome.Failures) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDeletionFailed, len(outcome.Failures), len(files))
	}

	return nil
}
