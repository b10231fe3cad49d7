package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/session-context/internal"
	"github.com/spf13/cobra"
)

// hookCmd answers the host tool's UserPromptSubmit hook
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle a UserPromptSubmit hook invocation",
	Long: `Read the hook payload from stdin and, when the prompt starts with a
session command (/pickup or /snapshot by default), reply with the list of
active sessions as additional context.

The hook never fails: on any problem it reports {"error": ...} on stderr
and writes {} to stdout so the prompt goes through unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runHook(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

func runHook(stdin io.Reader, stdout, stderr io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			reportHookError(stderr, fmt.Errorf("panic: %v", r))
			_ = internal.WriteHookOutput(stdout, internal.HookOutput{})
		}
	}()

	out := internal.HookOutput{}

	input, err := internal.ReadHookInput(stdin)
	if err != nil {
		reportHookError(stderr, err)
	} else {
		root := resolveRoot(input.CWD)
		cfg := loadConfig(root)
		out = internal.HandleHook(internal.HookRequest{
			Input:       input,
			Root:        root,
			Triggers:    cfg.Triggers,
			MaxSessions: cfg.MaxSessions,
		})
	}

	if err := internal.WriteHookOutput(stdout, out); err != nil {
		reportHookError(stderr, err)
	}
}

func reportHookError(w io.Writer, err error) {
	internal.LogDebug("Hook failed: %v", err)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
