package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// executeCommand runs rootCmd with fresh flag values and an isolated HOME
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	verbose, rootDir, configPath = false, "", ""
	listFormat, listOutput, listLimit = "text", "", -1

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		wantOut string
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantOut: "dev (commit: unknown",
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantOut: "session-context",
		},
		{
			name:    "nonexistent command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOut != "" && !strings.Contains(stdout, tt.wantOut) {
				t.Errorf("output should contain %q, got: %q", tt.wantOut, stdout)
			}
		})
	}
}

func TestResolveRoot(t *testing.T) {
	defer func() { rootDir = "" }()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rootDir = ""
	if got := resolveRoot(""); got != cwd {
		t.Errorf("resolveRoot(\"\") = %q, want working directory %q", got, cwd)
	}
	if got := resolveRoot("/from/hook"); got != "/from/hook" {
		t.Errorf("resolveRoot(hint) = %q, want /from/hook", got)
	}

	rootDir = "/from/flag"
	if got := resolveRoot("/from/hook"); got != "/from/flag" {
		t.Errorf("resolveRoot() with --root = %q, want /from/flag", got)
	}
}
