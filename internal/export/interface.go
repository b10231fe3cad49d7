package export

import (
	"fmt"
	"io"

	"github.com/iksnae/session-context/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(records []internal.SessionRecord, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "text", "md", "markdown":
		return &TextExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, md, json, jsonl, yaml)", format)
	}
}
