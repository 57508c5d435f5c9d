/*
PURPOSE:
  High-level runner that orchestrates one invocation.
  Acquires the lexical database, resolves the word (or a stream of words),
  writes the result.

REQUIREMENTS:
  User-specified:
  - Exactly one line on stdout on success.
  - Nothing on stdout when the database cannot be loaded.

  Implementation-discovered:
  - Load time of a full WordNet release is worth logging at debug level.
  - Batch callers feed one word per line and repeat words often; each
    distinct word is resolved once per process.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/wordnet, internal/output

ERROR HANDLING:
  - Database failures are wrapped in ErrLookupUnavailable and returned.
  - Write failures are returned as-is.
  - A read failure on the batch input stops the batch after the lines
    already written.

IMPLEMENTATION RULES:
  - Open database -> Lookup -> Write. No retries.
  - Batch: blank lines and lines starting with "#" are skipped.

USAGE:
  engine.Run(cfg, "happy", os.Stdout)
  engine.RunBatch(cfg, os.Stdin, os.Stdout)

SELF-HEALING INSTRUCTIONS:
  - If startup is slow, check the database path points at a single release.

RELATED FILES:
  - internal/engine/engine.go

MAINTENANCE:
  - Update writer selection when adding output formats.
*/

package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/daryltucker/syn/internal/config"
	"github.com/daryltucker/syn/internal/model"
	"github.com/daryltucker/syn/internal/output"
	"github.com/daryltucker/syn/internal/wordnet"
)

type resultWriter interface {
	Write(r model.Result) error
}

// Run executes a single lookup and writes the result to stdout.
func Run(cfg *config.Config, word string, stdout io.Writer) error {
	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}

	res := New(lex).Lookup(word)
	return newResultWriter(cfg, stdout).Write(res)
}

// RunBatch resolves every word read from r, one per line, and writes one
// result per word to stdout in input order.
func RunBatch(cfg *config.Config, r io.Reader, stdout io.Writer) error {
	lex, err := openLexicon(cfg)
	if err != nil {
		return err
	}

	return resolveAll(New(lex), r, newResultWriter(cfg, stdout))
}

func resolveAll(e *Engine, r io.Reader, w resultWriter) error {
	cache := make(map[string]model.Result)
	lines := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		lines++

		res, ok := cache[word]
		if !ok {
			res = e.Lookup(word)
			cache[word] = res
		}
		if err := w.Write(res); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read words: %w", err)
	}

	output.Logger.Debug("Batch finished", "words", lines, "distinct", len(cache))
	return nil
}

func openLexicon(cfg *config.Config) (*wordnet.Lexicon, error) {
	output.Logger.Debug("Loading lexical database...", "path", cfg.WordNetPath)
	start := time.Now()

	lex, err := wordnet.Open(cfg.WordNetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupUnavailable, err)
	}

	stats := lex.Stats()
	output.Logger.Debug("Lexical database loaded",
		"entries", stats.Entries,
		"synsets", stats.Synsets,
		"words", stats.Words,
		"duration", time.Since(start),
	)
	return lex, nil
}

func newResultWriter(cfg *config.Config, stdout io.Writer) resultWriter {
	switch cfg.Format {
	case config.FormatJSON:
		return output.NewJSONWriter(stdout)
	default:
		return output.NewTextWriter(stdout, cfg.All)
	}
}
