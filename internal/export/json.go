package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/session-context/internal"
)

// JSONExporter exports sessions as one pretty-printed JSON array
type JSONExporter struct{}

// Export exports the records to JSON format
func (e *JSONExporter) Export(records []internal.SessionRecord, w io.Writer) error {
	if records == nil {
		records = []internal.SessionRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return &internal.ExportError{Format: "json", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
