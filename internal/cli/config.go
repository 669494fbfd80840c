package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/extprune/internal/prune"
)

// EnvPrefix is the prefix for environment variables overriding flags.
const EnvPrefix = "EXTPRUNE"

// loadOptions resolves flags, environment and positional arguments into Options.
func loadOptions(flags *pflag.FlagSet, args []string) (prune.Options, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return prune.Options{}, fmt.Errorf("binding flags: %w", err)
	}

	options := prune.Options{
		Path:      args[0],
		Extension: prune.NormalizeExtension(args[1]),
		Recursive: v.GetBool("recursive"),
		Yes:       v.GetBool("yes"),
		DryRun:    v.GetBool("dry-run"),
		BatchSize: v.GetInt("batch-size"),
		Stats:     v.GetBool("stats"),
		Debug:     v.GetBool("debug"),
	}

	if options.BatchSize <= 0 {
		return prune.Options{}, fmt.Errorf("invalid batch-size %d: must be positive", options.BatchSize)
	}

	return options, nil
}
