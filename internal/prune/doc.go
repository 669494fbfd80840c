// Package prune finds files by extension and deletes them.
//
// It walks directory trees using fastwalk, sums the sizes of the matching
// files, and removes them one by one, collecting per-file failures instead
// of aborting the pass.
package prune
