package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djethino/claude-guardian-coach/internal/taskcontext"
)

func TestBuildCompactionContextNoContext(t *testing.T) {
	msg := buildCompactionContext(nil, t.TempDir(), time.Now())

	assert.Contains(t, msg, "⚠️ CONTEXT COMPACTED")
	assert.Contains(t, msg, "(No task context captured)")
	assert.Contains(t, msg, "→ STOP and check in with the user:")
	assert.NotContains(t, msg, "INITIAL REQUEST")
}

func TestBuildCompactionContextFull(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.go"), []byte("x"), 0o644))

	ctx := &taskcontext.TaskContext{
		InitialPrompt:    "refactor the parser",
		InitialTimestamp: time.Now().Add(-30 * time.Minute),
	}
	ctx.AddIntervention("also fix the lexer")
	ctx.RecordAccess("src/a.go", taskcontext.AccessWrite)
	ctx.RecordAccess("src/a.go", taskcontext.AccessRead)

	msg := buildCompactionContext(ctx, dir, time.Now())

	assert.Contains(t, msg, "📅 Task started at: "+ctx.InitialTimestamp.Format(clockFormat))
	assert.Contains(t, msg, "📋 INITIAL REQUEST:\nrefactor the parser")
	assert.Contains(t, msg, "💬 USER INTERVENTIONS:")
	assert.Contains(t, msg, "  - also fix the lexer")
	// Access kinds render read before write regardless of record order.
	assert.Contains(t, msg, "  - src/a.go [read+write]")
	assert.Contains(t, msg, "📁 OTHER FILES MODIFIED SINCE TASK START:")
	assert.Contains(t, msg, "  - untracked.go")
	assert.NotContains(t, msg, "(No task context captured)")
}

func TestBuildCompactionContextInterventionWindow(t *testing.T) {
	ctx := &taskcontext.TaskContext{InitialPrompt: "p"}
	for i := 1; i <= shownInterventions+3; i++ {
		ctx.AddIntervention(fmt.Sprintf("intervention %d", i))
	}

	msg := buildCompactionContext(ctx, t.TempDir(), time.Now())

	assert.NotContains(t, msg, "intervention 1\n")
	assert.NotContains(t, msg, "intervention 3\n")
	assert.Contains(t, msg, "intervention 4")
	assert.Contains(t, msg, fmt.Sprintf("intervention %d", shownInterventions+3))
}

func TestBuildCompactionContextTruncatesInterventions(t *testing.T) {
	ctx := &taskcontext.TaskContext{}
	ctx.AddIntervention(strings.Repeat("x", interventionEcho+50))

	msg := buildCompactionContext(ctx, t.TempDir(), time.Now())

	assert.Contains(t, msg, "  - "+strings.Repeat("x", interventionEcho)+"\n")
	assert.NotContains(t, msg, strings.Repeat("x", interventionEcho+1))
}

func TestBuildCompactionContextNoTimestampSkipsFileSections(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("x"), 0o644))

	ctx := &taskcontext.TaskContext{InitialPrompt: "p"}
	ctx.RecordAccess("a.go", taskcontext.AccessRead)

	msg := buildCompactionContext(ctx, dir, time.Now())

	assert.NotContains(t, msg, "Task started at")
	assert.NotContains(t, msg, "FILES ACCESSED")
	assert.NotContains(t, msg, "OTHER FILES MODIFIED")
}

func TestBuildCompactionContextTrackedFilesNotRepeated(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("x"), 0o644))

	ctx := &taskcontext.TaskContext{InitialTimestamp: time.Now().Add(-time.Hour)}
	ctx.RecordAccess("a.go", taskcontext.AccessUpdate)

	msg := buildCompactionContext(ctx, dir, time.Now())

	assert.Contains(t, msg, "📁 FILES ACCESSED DURING THIS TASK:")
	assert.Contains(t, msg, "  - a.go [update]")
	assert.NotContains(t, msg, "OTHER FILES MODIFIED")
}
