// PostToolUse hook for Guardian Coach.
//
// Records which files the agent touched into the session's task context,
// so the SessionStart hook can list them after compaction. Only runs
// while a task context exists; emits nothing.
package main

import (
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/taskcontext"
	"github.com/djethino/claude-guardian-coach/internal/validation"
)

// accessKinds maps tool names to the access kind recorded per file.
var accessKinds = map[string]string{
	"Read":         taskcontext.AccessRead,
	"Edit":         taskcontext.AccessUpdate,
	"MultiEdit":    taskcontext.AccessUpdate,
	"NotebookEdit": taskcontext.AccessUpdate,
	"Write":        taskcontext.AccessWrite,
}

func main() {
	run()
}

func run() {
	input, err := protocol.ReadStdin()
	if err != nil {
		return
	}

	kind, tracked := accessKinds[input.ToolName]
	if !tracked {
		return
	}

	cwd := input.WorkingDir()
	if cwd == "" {
		cwd = validation.GetWorkDir()
	}
	if cwd == "" {
		return
	}

	filePath := input.FilePath()
	if filePath == "" {
		filePath = input.NotebookPath()
	}
	if filePath == "" {
		return
	}

	ctx := taskcontext.Load(cwd, input.SessionID)
	if ctx == nil {
		return
	}

	ctx.RecordAccess(taskcontext.NormalizeRelPath(filePath, cwd), kind)
	ctx.Save(cwd, input.SessionID)
}
