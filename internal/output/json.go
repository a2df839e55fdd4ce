// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON renders the report as indented JSON in the v1 wire schema.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(r))
}
