package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/extprune/internal/prune"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	remover prune.Remover
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, remover: prune.OSRemover{}}
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extprune <path> <extension>",
		Short: "Delete files with a given extension",
		Long: heredoc.Doc(`
			extprune finds files under a directory whose name ends with the given
			extension, reports how many there are and how much space they use,
			and deletes them after confirmation.

			Positional Arguments:
			  path         Directory to search.
			  extension    File extension to match, with or without the leading dot (e.g. .tmp or tmp).

			Every flag can also be set through the environment with the EXTPRUNE_ prefix,
			e.g. EXTPRUNE_BATCH_SIZE=500. Flags take precedence.
		`),
		Example: heredoc.Doc(`
			# Delete all .tmp files directly in /tmp/build (subdirectories untouched)
			extprune /tmp/build .tmp

			# Delete all .log files in /var/log/app and every subdirectory
			extprune /var/log/app .log -r

			# Preview without deleting anything
			extprune /tmp/build .tmp --dry-run

			# Delete without asking for confirmation
			extprune /tmp/build .tmp -y
		`),
		Version:       c.version,
		Args:          cobra.ExactArgs(2), //nolint:mnd // path and extension
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := loadOptions(cmd.Flags(), args)
			if err != nil {
				return err
			}

			// Past this point errors are runtime failures, not usage mistakes.
			cmd.SilenceUsage = true

			return logic(cmd.Context(), options, streams{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				err: cmd.ErrOrStderr(),
			}, c.remover)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolP("recursive", "r", false, "Search subdirectories recursively")
	flags.BoolP("yes", "y", false, "Skip confirmation and delete immediately")
	flags.Bool("dry-run", false, "Preview what would be deleted without deleting")
	flags.Int("batch-size", prune.DefaultBatchSize, "Number of files between progress updates")
	flags.Bool("stats", false, "Report free space on the target volume before and after deletion")
	flags.Bool("debug", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
