package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/session-context/internal"
)

// JSONLExporter exports sessions in JSONL format (one session per line)
type JSONLExporter struct{}

// Export exports the records to JSONL format, keeping their rank order
func (e *JSONLExporter) Export(records []internal.SessionRecord, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return &internal.ExportError{Format: "jsonl", Err: err}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
