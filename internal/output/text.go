package output

import (
	"fmt"
	"io"

	"github.com/daryltucker/syn/internal/model"
)

// TextWriter prints the chosen synonym, or every candidate when all is set.
type TextWriter struct {
	w   io.Writer
	all bool
}

// NewTextWriter creates a new TextWriter.
func NewTextWriter(w io.Writer, all bool) *TextWriter {
	return &TextWriter{w: w, all: all}
}

// Write prints r, one name per line.
func (tw *TextWriter) Write(r model.Result) error {
	if !tw.all || len(r.Candidates) == 0 {
		_, err := fmt.Fprintln(tw.w, r.Synonym)
		return err
	}
	for _, c := range r.Candidates {
		if _, err := fmt.Fprintln(tw.w, c); err != nil {
			return err
		}
	}
	return nil
}
