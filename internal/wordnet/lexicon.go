/*
PURPOSE:
  Read-only lexical database over an Open English WordNet release.
  Answers "which synsets contain this word" and exposes each synset's lemmas.

REQUIREMENTS:
  User-specified:
  - Query contract: Synsets(word) -> []Synset, Synset.Lemmas() -> []Lemma,
    Lemma.Name() -> string.
  - Loaded once, held read-only for the process lifetime.

  Implementation-discovered:
  - Releases ship as GWN-LMF JSON, often gzip-compressed (.json.gz).
  - The OEWN source tree also ships as a directory of per-letter entry
    files and per-category synset files (see oewn.go).
  - Lemma names use underscores for spaces ("ice_cream"), as in the
    classic WordNet index files.
  - Queries are case-insensitive and resolve inflected forms via morphy.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (through the engine.Lexicon interface)
  - Dependencies: github.com/klauspost/compress/gzip

ERROR HANDLING:
  - Open/Load/OpenDir return wrapped errors for missing files, bad gzip
    streams, invalid JSON and directories without entry files.
    Queries never fail.

IMPLEMENTATION RULES:
  - Synset and Lemma are immutable values; accessors return copies.
  - Satellite adjectives ("s") are indexed together with adjectives.

USAGE:
  lex, err := wordnet.Open("english-wordnet-2024.json.gz")
  lex, err := wordnet.Open("english-wordnet/json")   // OEWN directory
  for _, s := range lex.Synsets("happy") { ... s.Lemmas() ... }

SELF-HEALING INSTRUCTIONS:
  - If a new release fails to decode, compare its "@graph" layout with gwn.go.

RELATED FILES:
  - internal/wordnet/gwn.go
  - internal/wordnet/oewn.go
  - internal/wordnet/morphy.go

MAINTENANCE:
  - Update gwn.go when the GWN-LMF JSON schema changes.
*/

package wordnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// PartOfSpeech is a WordNet part-of-speech tag.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "n"
	Verb      PartOfSpeech = "v"
	Adjective PartOfSpeech = "a"
	Adverb    PartOfSpeech = "r"
)

// queryOrder is the order in which parts of speech are searched.
var queryOrder = []PartOfSpeech{Noun, Verb, Adjective, Adverb}

// Lemma is a single surface form belonging to a synset.
type Lemma struct {
	name string
}

// Name returns the lemma's surface form.
func (l Lemma) Name() string {
	return l.name
}

// Synset is a set of lemmas sharing one sense.
type Synset struct {
	lemmas []Lemma
}

// NewSynset builds a synset from lemma names, in the given order.
func NewSynset(names ...string) Synset {
	lemmas := make([]Lemma, 0, len(names))
	for _, n := range names {
		lemmas = append(lemmas, Lemma{name: n})
	}
	return Synset{lemmas: lemmas}
}

// Lemmas returns the synset's lemmas in database order.
func (s Synset) Lemmas() []Lemma {
	return slices.Clone(s.lemmas)
}

// Stats holds index statistics for logging.
type Stats struct {
	Entries int
	Synsets int
	Words   int
}

// Lexicon is an in-memory WordNet index.
type Lexicon struct {
	synsets map[string]Synset
	// index maps part of speech -> lowercase lemma form -> synset IDs in sense order.
	index map[PartOfSpeech]map[string][]string
	stats Stats
}

// Open reads a GWN-LMF JSON file, or an OEWN JSON directory when path is a
// directory. File paths ending in ".gz" are decompressed.
func Open(path string) (*Lexicon, error) {
	if path == "" {
		return nil, errors.New("wordnet: empty database path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	if info.IsDir() {
		return OpenDir(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	lex, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lex, nil
}

// Load decodes a GWN-LMF JSON document and builds the index.
func Load(r io.Reader) (*Lexicon, error) {
	var doc gwnDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return build(doc), nil
}

func newLexicon() *Lexicon {
	return &Lexicon{
		synsets: make(map[string]Synset),
		index:   make(map[PartOfSpeech]map[string][]string),
	}
}

func build(doc gwnDocument) *Lexicon {
	lex := newLexicon()

	for _, lx := range doc.Graph {
		lex.stats.Entries += len(lx.Entries)
		lex.stats.Synsets += len(lx.Synsets)

		// Step 1: entryID -> lemma name, synsetID -> member names by reference order.
		entryNames := make(map[string]string, len(lx.Entries))
		referenced := make(map[string][]string)
		for _, entry := range lx.Entries {
			name := lemmaName(entry.Lemma.WrittenForm)
			entryNames[entry.ID] = name
			for _, sense := range entry.Sense {
				if !slices.Contains(referenced[sense.Synset], name) {
					referenced[sense.Synset] = append(referenced[sense.Synset], name)
				}
			}
		}

		// Step 2: synsets, preferring the explicit members list.
		synsetPOS := make(map[string]PartOfSpeech, len(lx.Synsets))
		for _, ss := range lx.Synsets {
			if pos, ok := synsetPartOfSpeech(ss.ID, ss.PartOfSpeech); ok {
				synsetPOS[ss.ID] = pos
			}

			var names []string
			for _, member := range ss.Members {
				name, ok := entryNames[member]
				if ok && !slices.Contains(names, name) {
					names = append(names, name)
				}
			}
			if len(names) == 0 {
				names = referenced[ss.ID]
			}
			lex.synsets[ss.ID] = NewSynset(names...)
		}

		// Step 3: word index, one slot per part of speech.
		for _, entry := range lx.Entries {
			form := indexForm(lemmaName(entry.Lemma.WrittenForm))
			if form == "" {
				continue
			}
			for _, sense := range entry.Sense {
				if _, ok := lex.synsets[sense.Synset]; !ok {
					continue
				}
				pos, ok := synsetPOS[sense.Synset]
				if !ok {
					if pos, ok = parsePartOfSpeech(entry.Lemma.PartOfSpeech); !ok {
						continue
					}
				}
				lex.addToIndex(pos, form, sense.Synset)
			}
		}
	}

	return lex
}

func (l *Lexicon) addToIndex(pos PartOfSpeech, form, synsetID string) {
	forms := l.index[pos]
	if forms == nil {
		forms = make(map[string][]string)
		l.index[pos] = forms
	}
	if _, ok := forms[form]; !ok {
		l.stats.Words++
	}
	if !slices.Contains(forms[form], synsetID) {
		forms[form] = append(forms[form], synsetID)
	}
}

// Synsets returns every synset containing word or one of its base forms,
// noun senses first, then verb, adjective and adverb senses.
func (l *Lexicon) Synsets(word string) []Synset {
	form := indexForm(word)
	if form == "" {
		return nil
	}

	var result []Synset
	seen := make(map[string]bool)
	for _, pos := range queryOrder {
		for _, base := range l.morphy(form, pos) {
			for _, id := range l.index[pos][base] {
				if seen[id] {
					continue
				}
				seen[id] = true
				result = append(result, l.synsets[id])
			}
		}
	}
	return result
}

// Stats returns index statistics.
func (l *Lexicon) Stats() Stats {
	return l.stats
}

func (l *Lexicon) has(pos PartOfSpeech, form string) bool {
	_, ok := l.index[pos][form]
	return ok
}

// lemmaName converts a written form to its lemma name: spaces become underscores.
func lemmaName(writtenForm string) string {
	return strings.ReplaceAll(strings.TrimSpace(writtenForm), " ", "_")
}

// indexForm is the lookup key for a written form or query.
func indexForm(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

func parsePartOfSpeech(s string) (PartOfSpeech, bool) {
	switch s {
	case "n":
		return Noun, true
	case "v":
		return Verb, true
	case "a", "s":
		return Adjective, true
	case "r":
		return Adverb, true
	default:
		return "", false
	}
}

// synsetPartOfSpeech reads the synset's tag, falling back to the ID suffix
// ("oewn-01148283-a", "01148283-a").
func synsetPartOfSpeech(id, tag string) (PartOfSpeech, bool) {
	if pos, ok := parsePartOfSpeech(tag); ok {
		return pos, true
	}
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return "", false
	}
	return parsePartOfSpeech(id[i+1:])
}
