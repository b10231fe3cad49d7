package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/session-context/internal"
	"github.com/iksnae/session-context/internal/export"
	"github.com/spf13/cobra"
)

var (
	listFormat string
	listOutput string
	listLimit  int
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	headlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active sessions",
	Long: `List the sessions under .session/feature/, most recently updated first.

The text format is exactly what the hook injects. On a terminal it is
rendered with colors and relative ages instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := resolveRoot("")
		cfg := loadConfig(root)

		limit := cfg.MaxSessions
		if listLimit >= 0 {
			limit = listLimit
		}

		exporter, err := export.NewExporter(listFormat)
		if err != nil {
			return err
		}

		records := internal.TopSessions(internal.ScanSessions(root), limit)

		if listOutput != "" {
			path := listOutput
			if filepath.Ext(path) == "" {
				path += "." + exporter.Extension()
			}
			if err := writeExport(exporter, records, path); err != nil {
				return err
			}
			internal.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Wrote %d session(s) to %s", len(records), path))
			return nil
		}

		out := cmd.OutOrStdout()
		if listFormat == "text" && internal.IsTerminal(out) {
			fmt.Fprint(out, renderSessions(records, time.Now()))
			return nil
		}

		return exporter.Export(records, out)
	},
}

func writeExport(exporter export.Exporter, records []internal.SessionRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := exporter.Export(records, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// renderSessions is the terminal rendering of the session list
func renderSessions(records []internal.SessionRecord, now time.Time) string {
	var sb strings.Builder

	if len(records) == 0 {
		sb.WriteString(headerStyle.Render("📋 " + internal.NoSessionsMessage))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("📋 %d active session(s), most recent first", len(records))))
	sb.WriteString("\n\n")

	for i, record := range records {
		line := indexStyle.Render(fmt.Sprintf("%2d.", i+1)) + " " + nameStyle.Render(record.Name)
		if record.Headline != "" {
			line += " " + headlineStyle.Render("- "+record.Headline)
		}
		if record.Freshness != nil {
			age := humanize.RelTime(*record.Freshness, now, "ago", "from now")
			line += " " + dateStyle.Render(fmt.Sprintf("(%s, %s)", age, record.Freshness.Format(internal.FreshnessLayout)))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render(fmt.Sprintf("💡 Tip: Use `session-context show %s` for details", records[0].Name)))
	sb.WriteString("\n")

	return sb.String()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: text, md, json, jsonl, yaml")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Write to a file instead of stdout")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", -1, "Maximum sessions to list (default: config max_sessions)")
}
