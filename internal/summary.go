package internal

import (
	"fmt"
	"strings"
)

const (
	// NoSessionsMessage is the whole summary when no session was found
	NoSessionsMessage = "No active sessions found in .session/feature/"
	// SummaryHeader introduces the numbered session list
	SummaryHeader = "Available active sessions (most recent first):"

	// FreshnessLayout renders freshness as year-month-day hour:minute
	FreshnessLayout = "2006-01-02 15:04"
)

// FormatSessionList renders records, in order, as the text injected into a
// prompt. It performs no I/O and always returns the same text for the same input.
func FormatSessionList(records []SessionRecord) string {
	if len(records) == 0 {
		return NoSessionsMessage
	}

	lines := make([]string, 0, len(records)+2)
	lines = append(lines, SummaryHeader, "")
	for i, record := range records {
		lines = append(lines, FormatSessionLine(i+1, record))
	}

	return strings.Join(lines, "\n")
}

// FormatSessionLine renders one numbered entry of the session list
func FormatSessionLine(index int, record SessionRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d. **%s**", index, record.Name))
	if record.Headline != "" {
		sb.WriteString(" - ")
		sb.WriteString(record.Headline)
	}
	if record.Freshness != nil {
		sb.WriteString(fmt.Sprintf(" (updated %s)", record.Freshness.Format(FreshnessLayout)))
	}
	return sb.String()
}
