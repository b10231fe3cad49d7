package export

import (
	"io"

	"github.com/iksnae/session-context/internal"
)

// TextExporter writes the same summary the hook injects
type TextExporter struct{}

// Export writes the session summary followed by a newline
func (e *TextExporter) Export(records []internal.SessionRecord, w io.Writer) error {
	if _, err := io.WriteString(w, internal.FormatSessionList(records)+"\n"); err != nil {
		return &internal.ExportError{Format: "text", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "md"
}
