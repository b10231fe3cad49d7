package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-context/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	noteStyle = lipgloss.NewStyle().
			Padding(0, 2)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 2)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-name>",
	Short: "Show details for one session",
	Long:  `Display the rank, markers, last update and current note of one session.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		root := resolveRoot("")
		loadConfig(root)

		records := internal.ScanSessions(root)
		for i, record := range records {
			if record.Name == name {
				displaySession(cmd.OutOrStdout(), record, i+1, len(records))
				return nil
			}
		}

		return fmt.Errorf("session %q not found in %s", name, internal.FeatureDir(root))
	},
}

func displaySession(w io.Writer, record internal.SessionRecord, rank, total int) {
	fmt.Fprintln(w, sessionHeaderStyle.Render(fmt.Sprintf("🗂  %s", record.Name)))

	metaParts := []string{fmt.Sprintf("Rank: %d of %d", rank, total)}
	if record.Freshness != nil {
		metaParts = append(metaParts, fmt.Sprintf("Updated: %s", record.Freshness.Format(internal.FreshnessLayout)))
	} else {
		metaParts = append(metaParts, "Updated: unknown")
	}
	metaParts = append(metaParts,
		fmt.Sprintf("%s: %s", internal.CurrentFile, presence(record.HasCurrent)),
		fmt.Sprintf("%s: %s", internal.StatusFile, presence(record.HasStatus)),
	)
	fmt.Fprintln(w, sessionMetaStyle.Render(strings.Join(metaParts, " • ")))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionLabelStyle.Render("Right Now"))
	if record.Headline != "" {
		fmt.Fprintln(w, noteStyle.Render(wrapText(record.Headline, 80)))
	} else {
		fmt.Fprintln(w, missingStyle.Render("(no current note)"))
	}
}

func presence(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var wrapped []string

	for _, line := range lines {
		if len(line) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		words := strings.Fields(line)
		currentLine := ""
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				if currentLine != "" {
					wrapped = append(wrapped, currentLine)
				}
				currentLine = word
			} else if currentLine == "" {
				currentLine = word
			} else {
				currentLine += " " + word
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return strings.Join(wrapped, "\n")
}

func init() {
	rootCmd.AddCommand(showCmd)
}
