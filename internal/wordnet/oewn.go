package wordnet

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// OEWN JSON directory layout, as exported from the english-wordnet sources:
//
//	entries-a.json … entries-z.json   lemma entries keyed by word, then POS
//	noun.*.json, verb.*.json, …       synsets keyed by synset ID

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]json.RawMessage

type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
}

type oewnSense struct {
	ID     string `json:"id"`
	Synset string `json:"synset"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
// Members are written forms, not entry IDs.
type oewnSynset struct {
	Members      []string `json:"members"`
	PartOfSpeech string   `json:"partOfSpeech"`
}

// OpenDir reads an OEWN JSON directory.
func OpenDir(dirPath string) (*Lexicon, error) {
	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}
	if len(entryFiles) == 0 {
		return nil, fmt.Errorf("no entries-*.json files in %s", dirPath)
	}

	entries := make([]oewnEntryFile, 0, len(entryFiles))
	for _, path := range entryFiles {
		ef, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		entries = append(entries, ef)
	}

	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}

	synsets := make(map[string]oewnSynset)
	for _, path := range synsetFiles {
		sf, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		maps.Copy(synsets, sf)
	}

	return buildDir(entries, synsets), nil
}

// oewnSenses is one word's senses under one POS key, in file order.
type oewnSenses struct {
	word   string
	pos    string
	senses []oewnSense
}

func buildDir(files []oewnEntryFile, synsets map[string]oewnSynset) *Lexicon {
	lex := newLexicon()
	lex.stats.Synsets = len(synsets)

	// Step 1: flatten entries in a stable order, recording which names reference each synset.
	var all []oewnSenses
	referenced := make(map[string][]string)
	for _, ef := range files {
		for _, word := range slices.Sorted(maps.Keys(ef)) {
			lex.stats.Entries++
			name := lemmaName(word)
			posMap := ef[word]
			for _, key := range slices.Sorted(maps.Keys(posMap)) {
				var pe oewnPOSEntry
				if err := json.Unmarshal(posMap[key], &pe); err != nil {
					continue
				}
				for _, sense := range pe.Sense {
					if !slices.Contains(referenced[sense.Synset], name) {
						referenced[sense.Synset] = append(referenced[sense.Synset], name)
					}
				}
				all = append(all, oewnSenses{word: name, pos: key, senses: pe.Sense})
			}
		}
	}

	// Step 2: synsets, preferring the explicit members list.
	synsetPOS := make(map[string]PartOfSpeech, len(synsets))
	for id, ss := range synsets {
		if pos, ok := synsetPartOfSpeech(id, ss.PartOfSpeech); ok {
			synsetPOS[id] = pos
		}

		var names []string
		for _, member := range ss.Members {
			name := lemmaName(member)
			if name != "" && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			names = referenced[id]
		}
		lex.synsets[id] = NewSynset(names...)
	}

	// Step 3: word index. The POS key may carry a suffix ("n-1") in newer exports.
	for _, ws := range all {
		form := indexForm(ws.word)
		if form == "" {
			continue
		}
		for _, sense := range ws.senses {
			if _, ok := lex.synsets[sense.Synset]; !ok {
				continue
			}
			pos, ok := synsetPOS[sense.Synset]
			if !ok {
				key, _, _ := strings.Cut(ws.pos, "-")
				if pos, ok = parsePartOfSpeech(key); !ok {
					continue
				}
			}
			lex.addToIndex(pos, form, sense.Synset)
		}
	}

	return lex
}

// readEntryFile reads a single entries-*.json file.
func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

// readSynsetFile reads a single synset file ({pos}.{category}.json).
func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files in the directory.
// Other files in the export (frames.json and the like) are skipped.
func globSynsetFiles(dirPath string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dirPath, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}
