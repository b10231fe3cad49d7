package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/session-context/internal"
	"github.com/iksnae/session-context/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	rootDir    string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "session-context",
	Short: "Inject active workflow sessions into prompt context",
	Long: `A small CLI that finds the sessions a workflow tool keeps under
.session/feature/ and summarizes them, most recently updated first.

Installed as a UserPromptSubmit hook, it answers /pickup and /snapshot
prompts with the list of active sessions so the assistant can resume one.

Quick Start:
  session-context hook                 # Hook handler (reads JSON on stdin)
  session-context list                 # Print the session summary
  session-context show <name>          # Details for one session
  session-context doctor               # Check the session tree`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveRoot picks the directory to scan: --root, then the hook's cwd,
// then the process working directory.
func resolveRoot(hint string) string {
	if rootDir != "" {
		return rootDir
	}
	if hint != "" {
		return hint
	}
	cwd, err := os.Getwd()
	if err != nil {
		internal.LogWarn("Failed to get working directory: %v", err)
		return "."
	}
	return cwd
}

// loadConfig never fails; problems are logged and defaults are used
func loadConfig(root string) *config.Config {
	cfg, err := config.Load(root, configPath)
	if err != nil {
		internal.LogWarn("Using default configuration: %v", err)
	}

	if !verbose {
		level, err := internal.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			internal.LogWarn("%v", err)
		}
		internal.SetLogLevel(level)
	}

	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project directory to scan (default: hook cwd or current directory)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an additional config file")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
