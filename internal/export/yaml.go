package export

import (
	"io"

	"github.com/iksnae/session-context/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports sessions in YAML format
type YAMLExporter struct{}

// Export exports the records to YAML format
func (e *YAMLExporter) Export(records []internal.SessionRecord, w io.Writer) error {
	if records == nil {
		records = []internal.SessionRecord{}
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(records); err != nil {
		return &internal.ExportError{Format: "yaml", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
