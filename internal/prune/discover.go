package prune

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// ScanProgressEvery is the number of discovered files between scan progress updates.
const ScanProgressEvery = 1000

var (
	// ErrPathNotExist is returned when the target directory is missing.
	ErrPathNotExist = errors.New("path does not exist")
	// ErrNotDirectory is returned when the target exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// validateRoot checks that path exists and is a directory.
func validateRoot(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrPathNotExist, path)
	}

	if err != nil {
		return fmt.Errorf("accessing path %q: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return nil
}

// isRegularFile reports whether the entry is a regular file, resolving symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := fastwalk.StatDirEntry(path, d)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Walk streams the path of every regular file under opt.Path whose name ends
// with opt.Extension to fn, one at a time.
//
// Only the files directly in opt.Path are visited unless opt.Recursive is set.
// Symbolic links are not followed into directories. Errors reading a directory
// abort the walk, as does a non-nil error returned by fn.
func Walk(ctx context.Context, opt Options, log *zap.Logger, fn func(path string) error) error {
	if log == nil {
		log = zap.NewNop()
	}

	root := filepath.Clean(opt.Path)

	if err := validateRoot(root); err != nil {
		return err
	}

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	if !opt.Recursive {
		conf.MaxDepth = 1
	}

	log.Debug("walking directory",
		zap.String("root", root),
		zap.String("extension", opt.Extension),
		zap.Bool("recursive", opt.Recursive),
	)

	// fastwalk calls back from several goroutines; fn sees one path at a time.
	var mu sync.Mutex

	//nolint:varnamelen // d is standard for DirEntry
	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("error accessing path", zap.String("path", path), zap.Error(err))

			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), opt.Extension) {
			return nil
		}

		if !isRegularFile(path, d) {
			log.Debug("skipping non-regular file", zap.String("path", path))

			return nil
		}

		mu.Lock()
		defer mu.Unlock()

		return fn(path)
	})
}

// Discover collects the paths produced by Walk.
// progressHook, if not nil, is called with the running count every
// ScanProgressEvery files.
func Discover(ctx context.Context, opt Options, log *zap.Logger, progressHook func(found int)) ([]string, error) {
	var files []string

	err := Walk(ctx, opt, log, func(path string) error {
		files = append(files, path)

		if progressHook != nil && len(files)%ScanProgressEvery == 0 {
			progressHook(len(files))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
