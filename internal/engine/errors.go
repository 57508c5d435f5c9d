package engine

import "errors"

// Sentinel errors surfaced at the process boundary.
var (
	ErrArgumentMissing   = errors.New("missing word argument")
	ErrLookupUnavailable = errors.New("lexical database unavailable")
)
