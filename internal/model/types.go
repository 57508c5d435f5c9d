/*
PURPOSE:
  Defines the core data structures used throughout syn.
  A Result records one lookup: the input word and what was chosen for it.

REQUIREMENTS:
  User-specified:
  - Output the chosen synonym, or the word itself when none exists.

  Implementation-discovered:
  - Need JSON tags for the --json output line.
  - Keeping the sorted candidate list makes --all and debugging trivial.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  res := model.Result{Word: "happy", Synonym: "felicitous"}

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add them here and to the writers.

RELATED FILES:
  - internal/output/json.go
  - internal/output/text.go

MAINTENANCE:
  - Update when the JSON output line changes.
*/

package model

// Result represents the outcome of a single synonym lookup.
type Result struct {
	Word       string   `json:"word"`
	Synonym    string   `json:"synonym"`
	Candidates []string `json:"candidates"` // Sorted lemma names across all senses
	Fallback   bool     `json:"fallback"`   // True when no candidates were found
}
