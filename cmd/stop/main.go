// Stop hook for Guardian Coach.
//
// Sets the task_completed flag so the next UserPromptSubmit knows to
// start a new task. Emits nothing.
package main

import (
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/taskcontext"
)

func main() {
	run()
}

func run() {
	input, err := protocol.ReadStdin()
	if err != nil {
		return
	}

	cwd := input.WorkingDir()
	sessionID := input.SessionID
	if cwd == "" || sessionID == "" {
		return
	}

	ctx := taskcontext.Load(cwd, sessionID)
	if ctx == nil {
		ctx = &taskcontext.TaskContext{}
	}
	ctx.TaskCompleted = true
	ctx.Save(cwd, sessionID)
}
