package prune

import (
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Remover deletes a single file.
type Remover interface {
	Remove(path string) error
}

// OSRemover removes files with os.Remove.
type OSRemover struct{}

// Remove deletes path from the filesystem.
func (OSRemover) Remove(path string) error {
	return os.Remove(path)
}

// Failure records a file that could not be deleted.
type Failure struct {
	// Path is the file path.
	Path string `json:"path"`
	// Err is the error description.
	Err string `json:"error"`
}

// Outcome holds the result of a deletion pass.
type Outcome struct {
	// Deleted is the number of files deleted (or that would be, in a dry run).
	Deleted int `json:"deleted"`
	// DeletedBytes is the cumulative size of the deleted files.
	DeletedBytes int64 `json:"deleted_bytes"`
	// Failures lists the files that could not be deleted, in order.
	Failures []Failure `json:"failures"`
}

// Hooks receives notifications during a deletion pass. Nil hooks are skipped.
type Hooks struct {
	// Progress is called every BatchSize files with the 1-based index and the total.
	Progress func(done, total int)
	// Failure is called as soon as a file fails.
	Failure func(Failure)
	// Logger receives debug output.
	Logger *zap.Logger
}

// deleteOne stats and, unless dryRun, removes a single file.
func deleteOne(path string, remover Remover, dryRun bool) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if !dryRun {
		if err := remover.Remove(path); err != nil {
			return 0, err
		}
	}

	return info.Size(), nil
}

// Delete walks files in order and removes each one unless opt.DryRun is set.
// Failures are recorded and the pass continues; nothing is retried.
func Delete(files []string, opt Options, remover Remover, hooks Hooks) Outcome {
	log := hooks.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if remover == nil {
		remover = OSRemover{}
	}

	batchSize := opt.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var outcome Outcome

	for i, path := range files {
		size, err := deleteOne(path, remover, opt.DryRun)
		if err != nil {
			failure := Failure{Path: path, Err: err.Error()}
			outcome.Failures = append(outcome.Failures, failure)

			log.Debug("delete failed", zap.String("path", path), zap.Error(err))

			if hooks.Failure != nil {
				hooks.Failure(failure)
			}
		} else {
			outcome.DeletedBytes += size
			outcome.Deleted++

			log.Debug("deleted",
				zap.String("path", path),
				zap.String("size", humanize.IBytes(uint64(size))), //nolint:gosec // Size is never negative
				zap.Bool("dry_run", opt.DryRun),
			)
		}

		if done := i + 1; done%batchSize == 0 && hooks.Progress != nil {
			hooks.Progress(done, len(files))
		}
	}

	return outcome
}
