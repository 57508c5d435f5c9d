/*
PURPOSE:
  Performs the lookup (or the --stdin batch) for the root command.

REQUIREMENTS:
  User-specified:
  - Print the synonym (or the word) and nothing else on stdout.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Logger must be configured before the database is opened.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run(), internal/engine.RunBatch()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Logger -> Engine.Run.

USAGE:
  syn --wordnet ./english-wordnet.json happy
  syn --stdin < words.txt

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/daryltucker/syn/internal/config"
	"github.com/daryltucker/syn/internal/engine"
	"github.com/daryltucker/syn/internal/output"
	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, opts *options, word string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// 4. Execution
	return engine.Run(cfg, word, cmd.OutOrStdout())
}

func runBatch(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// 4. Execution
	return engine.RunBatch(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

func loadConfig(opts *options) (*config.Config, error) {
	// 1. Load Config
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	// 2. Overrides
	if opts.wordnet != "" {
		cfg.WordNetPath = opts.wordnet
	}
	if opts.json {
		cfg.Format = config.FormatJSON
	}
	if opts.all {
		cfg.All = true
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	// 3. Logging
	output.Setup(cfg.Log)

	return cfg, nil
}
