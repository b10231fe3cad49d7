package internal

import (
	"encoding/json"
	"io"
	"strings"
)

const (
	// MaxHookInputBytes caps stdin reads; hook payloads are small JSON objects
	MaxHookInputBytes = 1 << 20

	// UserPromptSubmitEvent is the hook event this tool answers
	UserPromptSubmitEvent = "UserPromptSubmit"
)

// DefaultTriggers are the prompt prefixes that request session context
var DefaultTriggers = []string{"/pickup", "/snapshot"}

// HookInput is the JSON the host tool sends on stdin
type HookInput struct {
	Prompt        string `json:"prompt"`
	CWD           string `json:"cwd"`
	SessionID     string `json:"session_id,omitempty"`
	HookEventName string `json:"hook_event_name,omitempty"`
}

// HookOutput is the JSON written back on stdout. An empty value encodes as {}.
type HookOutput struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries the text added to the prompt's context
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// HookRequest is a decoded hook invocation ready to be answered
type HookRequest struct {
	Input       HookInput
	Root        string
	Triggers    []string
	MaxSessions int
}

// ReadHookInput decodes a hook payload from r
func ReadHookInput(r io.Reader) (HookInput, error) {
	var input HookInput

	data, err := io.ReadAll(io.LimitReader(r, MaxHookInputBytes))
	if err != nil {
		return input, &HookError{Stage: "read", Err: err}
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, &HookError{Stage: "decode", Err: err}
	}

	return input, nil
}

// IsSessionCommand reports whether the prompt starts with one of the triggers
func IsSessionCommand(prompt string, triggers []string) bool {
	prompt = strings.TrimSpace(prompt)
	for _, trigger := range triggers {
		if trigger != "" && strings.HasPrefix(prompt, trigger) {
			return true
		}
	}
	return false
}

// HandleHook answers a hook invocation. Prompts that are not session commands
// get an empty output; the rest get the ranked session summary for Root.
func HandleHook(req HookRequest) HookOutput {
	triggers := req.Triggers
	if len(triggers) == 0 {
		triggers = DefaultTriggers
	}

	if !IsSessionCommand(req.Input.Prompt, triggers) {
		LogDebug("Prompt is not a session command, passing through")
		return HookOutput{}
	}

	records := TopSessions(ScanSessions(req.Root), req.MaxSessions)
	LogDebug("Injecting %d session(s) from %s", len(records), req.Root)

	eventName := req.Input.HookEventName
	if eventName == "" {
		eventName = UserPromptSubmitEvent
	}

	return HookOutput{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:     eventName,
			AdditionalContext: FormatSessionList(records),
		},
	}
}

// WriteHookOutput encodes out as a single JSON line
func WriteHookOutput(w io.Writer, out HookOutput) error {
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return &HookError{Stage: "encode", Err: err}
	}
	return nil
}
