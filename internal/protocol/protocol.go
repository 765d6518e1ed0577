// Package protocol handles JSON stdin/stdout communication with Claude Code hooks.
// Every hook reads a single request document from stdin and writes at most one
// response to stdout; absence of output means "take no action".
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxInputSize limits stdin to 10MB to bound memory on hostile input.
const MaxInputSize = 10 * 1024 * 1024

// Hook event names used in hookSpecificOutput.
const (
	EventPreToolUse   = "PreToolUse"
	EventSessionStart = "SessionStart"
)

// Permission decisions.
const (
	PermissionAllow = "allow"
	PermissionDeny  = "deny"
)

// ErrEmptyInput is returned when stdin carries no request document.
var ErrEmptyInput = errors.New("empty hook input")

// HookInput is the JSON request Claude Code sends to hooks.
type HookInput struct {
	SessionID string                 `json:"session_id"`
	ToolName  string                 `json:"tool_name"`
	ToolInput map[string]interface{} `json:"tool_input"`
	Cwd       string                 `json:"cwd,omitempty"`
	Prompt    string                 `json:"prompt,omitempty"`
	Source    string                 `json:"source,omitempty"`
}

// HookOutput is the JSON response written back to Claude Code.
type HookOutput struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries the per-event decision payload.
// A deny always carries a non-empty reason; updatedInput only ever
// accompanies an allow.
type HookSpecificOutput struct {
	HookEventName            string                 `json:"hookEventName"`
	PermissionDecision       string                 `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string                 `json:"permissionDecisionReason,omitempty"`
	UpdatedInput             map[string]interface{} `json:"updatedInput,omitempty"`
	SystemMessage            string                 `json:"systemMessage,omitempty"`
	AdditionalContext        string                 `json:"additionalContext,omitempty"`
}

// ReadInput reads and parses the request document from r with size limiting.
// A non-object top level or a non-object tool_input fails the unmarshal,
// which callers treat as malformed input (fail-open).
func ReadInput(r io.Reader) (*HookInput, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var input HookInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parse hook input: %w", err)
	}

	return &input, nil
}

// ReadStdin reads the request document from os.Stdin.
func ReadStdin() (*HookInput, error) {
	return ReadInput(os.Stdin)
}

// WriteOutput marshals output and writes it to stdout. A nil output writes
// nothing: silent allow is signaled by absence of a response body.
func WriteOutput(output *HookOutput) error {
	if output == nil {
		return nil
	}

	data, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal hook output: %w", err)
	}

	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// WorkingDir returns the request's cwd with surrounding whitespace removed,
// or empty when absent or blank.
func (h *HookInput) WorkingDir() string {
	return strings.TrimSpace(h.Cwd)
}

// FilePath extracts file_path from tool input, empty when not present.
func (h *HookInput) FilePath() string {
	return h.stringField("file_path")
}

// NotebookPath extracts notebook_path from tool input, empty when not present.
func (h *HookInput) NotebookPath() string {
	return h.stringField("notebook_path")
}

// Command extracts command from tool input (Bash), empty when not present.
func (h *HookInput) Command() string {
	return h.stringField("command")
}

func (h *HookInput) stringField(key string) string {
	if h.ToolInput == nil {
		return ""
	}
	if v, ok := h.ToolInput[key].(string); ok {
		return v
	}
	return ""
}
