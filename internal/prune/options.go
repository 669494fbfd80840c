package prune

import "strings"

// DefaultBatchSize is the default number of files between deletion progress updates.
const DefaultBatchSize = 100

// Options configures discovery and deletion.
type Options struct {
	// Path is the directory to search.
	Path string
	// Extension is the file suffix to match, always with a leading dot.
	Extension string
	// Recursive indicates whether to descend into subdirectories.
	Recursive bool
	// Yes skips the interactive confirmation.
	Yes bool
	// DryRun reports what would be deleted without removing anything.
	DryRun bool
	// BatchSize controls deletion progress cadence.
	BatchSize int
	// Stats indicates whether to report the volume's free space.
	Stats bool
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// NormalizeExtension prepends a dot to ext if it has none.
func NormalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}
