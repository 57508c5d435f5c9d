package wordnet

// GWN-LMF JSON internal types for deserialization.
// Only the fields needed to answer synset queries are decoded.

type gwnDocument struct {
	Graph []gwnLexicon `json:"@graph"`
}

type gwnLexicon struct {
	ID      string      `json:"@id"`
	Entries []gwnEntry  `json:"entry"`
	Synsets []gwnSynset `json:"synset"`
}

type gwnEntry struct {
	ID    string     `json:"@id"`
	Lemma gwnLemma   `json:"lemma"`
	Sense []gwnSense `json:"sense"`
}

type gwnLemma struct {
	WrittenForm  string `json:"writtenForm"`
	PartOfSpeech string `json:"partOfSpeech"`
}

type gwnSense struct {
	ID     string `json:"@id"`
	Synset string `json:"synset"`
}

type gwnSynset struct {
	ID           string   `json:"@id"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Members      []string `json:"members"`
}
