package prune

import (
	"fmt"
	"os"
)

// sizeUnits are the binary units used by FormatSize, smallest first.
//
//nolint:gochecknoglobals // Lookup table
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders size in 1024-based units with two decimals, e.g. "1.50 KB".
// Sizes of 1024 PB and above stay in PB.
func FormatSize(size int64) string {
	value := float64(size)
	last := len(sizeUnits) - 1

	for _, unit := range sizeUnits[:last] {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}

		value /= 1024
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[last])
}

// TotalSize returns the summed on-disk size of files.
// It stats every file again; a file that can no longer be stat'ed fails the whole call.
func TotalSize(files []string) (int64, error) {
	var total int64

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return 0, fmt.Errorf("reading size: %w", err)
		}

		total += info.Size()
	}

	return total, nil
}
