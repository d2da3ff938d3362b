package export

import (
	"encoding/json"
	"io"

	"github.com/chrissnell/vacances/pkg/vacances"
)

// WriteJSON writes the day entries as an indented JSON array ordered by date
func WriteJSON(w io.Writer, h vacances.Holidays) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(vacances.Sorted(h))
}
