package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-context/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// markerCoverage counts how many sessions carry each marker
type markerCoverage struct {
	Total        int
	WithCurrent  int
	WithStatus   int
	WithHeadline int
	Undated      int
}

func coverageOf(records []internal.SessionRecord) markerCoverage {
	c := markerCoverage{Total: len(records)}
	for _, r := range records {
		if r.HasCurrent {
			c.WithCurrent++
		}
		if r.HasStatus {
			c.WithStatus++
		}
		if r.Headline != "" {
			c.WithHeadline++
		}
		if r.Freshness == nil {
			c.Undated++
		}
	}
	return c
}

// doctorCmd checks that the session tree can be found and read
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that session data can be located and read",
	Long: `Check the session tree under the project root by verifying:
  • Configuration loading
  • Presence of .session/feature/
  • Readability of the session directories
  • Marker file coverage (CURRENT.md, STATUS.md, "## Right Now" notes)

Use --verbose to print the effective configuration and every session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout(), resolveRoot(""))
	},
}

func runDoctor(w io.Writer, root string) error {
	fmt.Fprintln(w, sectionStyle.Render("🔍 Session Context Health Check"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, infoStyle.Render("Step 1: Loading configuration..."))
	cfg := loadConfig(root)
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Triggers: %v, max sessions: %d", cfg.Triggers, cfg.MaxSessions)))
	if verbose {
		if data, err := cfg.YAML(); err == nil {
			fmt.Fprintf(w, "%s", data)
		}
	}
	fmt.Fprintln(w)

	featureDir := internal.FeatureDir(root)
	fmt.Fprintln(w, infoStyle.Render("Step 2: Scanning session tree..."))
	records, err := internal.LoadSessions(root)
	switch {
	case errors.Is(err, internal.ErrNoFeatureDir):
		fmt.Fprintln(w, warningStyle.Render("⚠️  No session directory found"))
		fmt.Fprintf(w, "   Expected: %s\n", featureDir)
		fmt.Fprintln(w, "   The hook will report that no sessions are active.")
		return nil
	case err != nil:
		fmt.Fprintln(w, errorStyle.Render("❌ Failed to read session directory:"), err)
		fmt.Fprintln(w, "   The hook will fall back to reporting no active sessions.")
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Read %s", featureDir)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, infoStyle.Render("Step 3: Checking marker files..."))
	c := coverageOf(records)
	if c.Total == 0 {
		fmt.Fprintln(w, warningStyle.Render("⚠️  No sessions found"))
		return nil
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("✅ Found %d session(s)", c.Total)))
	fmt.Fprintf(w, "   With %s: %d\n", internal.CurrentFile, c.WithCurrent)
	fmt.Fprintf(w, "   With %s: %d\n", internal.StatusFile, c.WithStatus)
	fmt.Fprintf(w, "   With a %q note: %d\n", internal.RightNowHeading, c.WithHeadline)
	if c.Undated > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  %d session(s) have no marker file and rank last", c.Undated)))
	}
	if verbose {
		for i, r := range records {
			fmt.Fprintf(w, "   %s\n", internal.FormatSessionLine(i+1, r))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("📊 Summary"))
	fmt.Fprintln(w, successStyle.Render("✅ Health check passed!"))
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
