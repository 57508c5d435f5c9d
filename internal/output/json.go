/*
PURPOSE:
  Writes a lookup result as a single JSON line.
  For scripts that want the candidates and the fallback flag.

REQUIREMENTS:
  User-specified:
  - Exactly one line on stdout per looked-up word.

  Implementation-discovered:
  - json.Encoder already terminates each value with a newline.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns the encoder's write error.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - One Write per result, one line per Write.

USAGE:
  w := output.NewJSONWriter(os.Stdout)
  w.Write(result)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Keep field names stable; scripts depend on them.
*/

package output

import (
	"encoding/json"
	"io"

	"github.com/daryltucker/syn/internal/model"
)

// JSONWriter writes results as JSON lines.
type JSONWriter struct {
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		encoder: json.NewEncoder(w),
	}
}

// Write writes a single result as a JSON line.
func (jw *JSONWriter) Write(r model.Result) error {
	return jw.encoder.Encode(r)
}
