/*
PURPOSE:
  Core synonym lookup. Given a word, collects every lemma name from every
  synset the lexical database returns, sorts them, and picks the first.

REQUIREMENTS:
  User-specified:
  - Lexicographically smallest lemma name wins (no frequency or sense ranking).
  - No synsets -> echo the original word unchanged.

  Implementation-discovered:
  - The database may list the query word among its own lemmas; it stays a
    candidate like any other name.
  - Candidates are kept for --all and JSON output.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: internal/wordnet (via Lexicon), internal/model, internal/output

ERROR HANDLING:
  - None. Lookup cannot fail once a Lexicon exists.

IMPLEMENTATION RULES:
  - Byte-wise ascending sort (slices.Sort on strings).
  - Never normalize the input here; the database owns query semantics.

USAGE:
  e := engine.New(lex)
  word := e.Resolve("happy")

SELF-HEALING INSTRUCTIONS:
  - If results look wrong, dump e.Candidates(word) before blaming the sort.

RELATED FILES:
  - internal/wordnet/lexicon.go
  - internal/model/types.go

MAINTENANCE:
  - Selection is deliberately naive; keep it that way.
*/

package engine

import (
	"slices"

	"github.com/daryltucker/syn/internal/model"
	"github.com/daryltucker/syn/internal/output"
	"github.com/daryltucker/syn/internal/wordnet"
)

// Lexicon is the read-only query contract of the lexical database.
type Lexicon interface {
	Synsets(word string) []wordnet.Synset
}

// Engine answers synonym queries against a Lexicon.
type Engine struct {
	Lexicon Lexicon
}

// New creates a new Engine.
func New(lex Lexicon) *Engine {
	return &Engine{Lexicon: lex}
}

// Candidates returns the lemma names of every synset for word, sorted ascending.
func (e *Engine) Candidates(word string) []string {
	names := make([]string, 0)
	for _, synset := range e.Lexicon.Synsets(word) {
		for _, lemma := range synset.Lemmas() {
			names = append(names, lemma.Name())
		}
	}
	slices.Sort(names)
	return names
}

// Lookup resolves word and reports how the result was chosen.
func (e *Engine) Lookup(word string) model.Result {
	candidates := e.Candidates(word)

	res := model.Result{
		Word:       word,
		Candidates: candidates,
	}
	if len(candidates) == 0 {
		res.Synonym = word
		res.Fallback = true
		output.Logger.Info("No synonyms found, echoing word", "word", word)
		return res
	}

	res.Synonym = candidates[0]
	output.Logger.Debug("Resolved synonym", "word", word, "synonym", res.Synonym, "candidates", len(candidates))
	return res
}

// Resolve returns the lexicographically first synonym of word, or word itself.
func (e *Engine) Resolve(word string) string {
	return e.Lookup(word).Synonym
}
