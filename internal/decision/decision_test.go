package decision

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djethino/claude-guardian-coach/internal/pathfix"
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/rules"
)

func TestPathCorrectionEditDenies(t *testing.T) {
	corr := pathfix.Correct("/home/u/proj/a.py", "/home/u/proj")
	require.NotNil(t, corr)

	out := PathCorrection("Edit", map[string]interface{}{"file_path": "/home/u/proj/a.py"}, corr)
	require.NotNil(t, out)
	require.NotNil(t, out.HookSpecificOutput)

	h := out.HookSpecificOutput
	assert.Equal(t, protocol.EventPreToolUse, h.HookEventName)
	assert.Equal(t, protocol.PermissionDeny, h.PermissionDecision)
	assert.Contains(t, h.PermissionDecisionReason, "/home/u/proj/a.py")
	assert.Contains(t, h.PermissionDecisionReason, "a.py")
	assert.Nil(t, h.UpdatedInput)
	assert.Empty(t, h.SystemMessage)
}

func TestPathCorrectionRewrites(t *testing.T) {
	corr := pathfix.Correct("/home/u/proj/src/a.py", "/home/u/proj")
	require.NotNil(t, corr)

	toolInput := map[string]interface{}{
		"file_path": "/home/u/proj/src/a.py",
		"content":   "print('hi')",
	}

	for _, tool := range []string{"Read", "Write", "MultiEdit"} {
		t.Run(tool, func(t *testing.T) {
			out := PathCorrection(tool, toolInput, corr)
			require.NotNil(t, out)

			h := out.HookSpecificOutput
			assert.Equal(t, protocol.PermissionAllow, h.PermissionDecision)
			assert.Equal(t, "src/a.py", h.UpdatedInput["file_path"])
			assert.Equal(t, "print('hi')", h.UpdatedInput["content"])
			assert.Equal(t, "PATH CORRECTED: /home/u/proj/src/a.py -> src/a.py", h.SystemMessage)
		})
	}

	// Original input map is never mutated.
	assert.Equal(t, "/home/u/proj/src/a.py", toolInput["file_path"])
}

func TestPathCorrectionNil(t *testing.T) {
	assert.Nil(t, PathCorrection("Read", map[string]interface{}{}, nil))
}

func TestCoaching(t *testing.T) {
	v := &rules.Verdict{Tool: rules.ToolRead, Message: "COACHING: Use the Read tool instead of 'cat' for viewing file contents."}
	out := Coaching(v, "cat main.go")
	require.NotNil(t, out)

	h := out.HookSpecificOutput
	assert.Equal(t, protocol.EventPreToolUse, h.HookEventName)
	assert.Equal(t, protocol.PermissionDeny, h.PermissionDecision)
	assert.Contains(t, h.PermissionDecisionReason, v.Message)
	assert.Contains(t, h.PermissionDecisionReason, "Command: cat main.go")
	assert.True(t, strings.HasSuffix(h.PermissionDecisionReason, "\n"))
}

func TestCoachingTruncatesCommand(t *testing.T) {
	long := strings.Repeat("é", 400)
	out := Coaching(&rules.Verdict{Tool: rules.ToolGrep, Message: "msg"}, long)
	require.NotNil(t, out)

	reason := out.HookSpecificOutput.PermissionDecisionReason
	assert.Contains(t, reason, "…")
	// 300 runes of command plus the ellipsis.
	echoed := strings.TrimSuffix(strings.TrimPrefix(reason, "msg\n\nCommand: "), "\n")
	assert.Equal(t, 301, utf8.RuneCountInString(echoed))
}

func TestCoachingNil(t *testing.T) {
	assert.Nil(t, Coaching(nil, "anything"))
}
