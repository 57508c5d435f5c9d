package wordnet

import "strings"

// substitution replaces an inflectional suffix with a base-form ending.
type substitution struct {
	suffix  string
	replace string
}

// detachmentRules are WordNet's suffix-detachment rules, tried in order.
var detachmentRules = map[PartOfSpeech][]substitution{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// exceptions lists irregular inflections the rules cannot reach.
var exceptions = map[PartOfSpeech]map[string][]string{
	Noun: {
		"children": {"child"},
		"feet":     {"foot"},
		"geese":    {"goose"},
		"mice":     {"mouse"},
		"people":   {"person"},
		"teeth":    {"tooth"},
		"women":    {"woman"},
		"oxen":     {"ox"},
	},
	Verb: {
		"am":      {"be"},
		"are":     {"be"},
		"is":      {"be"},
		"was":     {"be"},
		"were":    {"be"},
		"been":    {"be"},
		"did":     {"do"},
		"done":    {"do"},
		"went":    {"go"},
		"gone":    {"go"},
		"had":     {"have"},
		"made":    {"make"},
		"ran":     {"run"},
		"saw":     {"see"},
		"seen":    {"see"},
		"took":    {"take"},
		"taken":   {"take"},
		"thought": {"think"},
		"wrote":   {"write"},
		"written": {"write"},
	},
	Adjective: {
		"better": {"good", "well"},
		"best":   {"good", "well"},
		"worse":  {"bad"},
		"worst":  {"bad"},
		"more":   {"many", "much"},
		"most":   {"many", "much"},
		"less":   {"little"},
		"least":  {"little"},
	},
	Adverb: {
		"better": {"well"},
		"best":   {"well"},
		"worse":  {"badly"},
		"worst":  {"badly"},
	},
}

// morphy returns the base forms of form that exist in the index for pos.
// An exception entry wins outright; otherwise the form itself and one round
// of rule application are checked, then rules are applied repeatedly until
// some candidate is found or the candidates run out.
func (l *Lexicon) morphy(form string, pos PartOfSpeech) []string {
	if bases, ok := exceptions[pos][form]; ok {
		return l.filterForms(pos, append([]string{form}, bases...))
	}

	forms := applyRules(pos, []string{form})
	if found := l.filterForms(pos, append([]string{form}, forms...)); len(found) > 0 {
		return found
	}

	for len(forms) > 0 {
		forms = applyRules(pos, forms)
		if found := l.filterForms(pos, forms); len(found) > 0 {
			return found
		}
	}
	return nil
}

func applyRules(pos PartOfSpeech, forms []string) []string {
	var out []string
	for _, form := range forms {
		for _, rule := range detachmentRules[pos] {
			if strings.HasSuffix(form, rule.suffix) {
				base := strings.TrimSuffix(form, rule.suffix) + rule.replace
				if base != "" {
					out = append(out, base)
				}
			}
		}
	}
	return out
}

func (l *Lexicon) filterForms(pos PartOfSpeech, forms []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, form := range forms {
		if seen[form] || !l.has(pos, form) {
			continue
		}
		seen[form] = true
		out = append(out, form)
	}
	return out
}
