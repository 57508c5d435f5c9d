/*
PURPOSE:
  Defines the root Cobra command for the syn CLI.
  The root command itself performs the lookup: `syn <word>`.

REQUIREMENTS:
  User-specified:
  - Exactly one positional argument, the word.
  - Missing argument -> non-zero exit, nothing on stdout.
  - --stdin reads one word per line instead and takes no positional word.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Cobra's own error/usage printing is silenced; main.go prints the error once.
  - Words starting with "-" need "--" before them or pflag reads them as flags.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/syn/main.go
  - Calls: internal/cli/run.go

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Argument errors wrap engine.ErrArgumentMissing where applicable.

IMPLEMENTATION RULES:
  - Build the command in newRootCmd() so tests get fresh flag state.
  - Keep lookup logic in run.go.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new flags, add them to options and newRootCmd().

RELATED FILES:
  - cmd/syn/main.go
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/syn/internal/buildinfo"
	"github.com/daryltucker/syn/internal/engine"
	"github.com/spf13/cobra"
)

// options holds flag values for one command instance.
type options struct {
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	wordnet string
	json    bool
	all     bool
	debug   bool
	stdin   bool
}

// Execute executes the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "syn <word>",
		Short: "Print a synonym for a word",
		Long: `Looks the word up in an Open English WordNet database and prints the
alphabetically first lemma across all of its senses. If the word has no
senses, the word itself is printed.`,
		Example: `  # Uses ./english-wordnet.json (or wordnet_path from syn.yaml)
  syn happy

  # Point at a compressed release
  syn --wordnet ~/data/english-wordnet-2024.json.gz happy

  # Or at an OEWN JSON directory (entries-*.json, noun.*.json, ...)
  syn --wordnet ~/src/english-wordnet/json happy

  # Every candidate, sorted
  syn --all happy

  # Words starting with a dash
  syn -- -ish

  # One word per line, one result per line
  printf 'happy\ndogs\n' | syn --stdin`,
		Version: buildinfo.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.stdin {
				return noWordArg(cmd, args)
			}
			return wordArg(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.stdin {
				return runBatch(cmd, opts)
			}
			return runLookup(cmd, opts, args[0])
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./syn.yaml)")
	cmd.Flags().StringVar(&opts.wordnet, "wordnet", "", "Path to a GWN-LMF JSON WordNet release (.json or .json.gz) or an OEWN JSON directory")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as a single JSON line")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Print every candidate, sorted, one per line")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read words from stdin, one per line")

	return cmd
}

func wordArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 || args[0] == "":
		return engine.ErrArgumentMissing
	case len(args) > 1:
		return fmt.Errorf("expected exactly one word, got %d arguments", len(args))
	}
	return nil
}

func noWordArg(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("--stdin takes no word arguments, got %d", len(args))
	}
	return nil
}
