// UserPromptSubmit hook for Guardian Coach.
//
// Captures user prompts so task context survives compaction:
//   - task_completed set (by the Stop hook or a session reset) or no
//     context yet
//     → this prompt starts a NEW task, stored as the initial prompt
//   - otherwise
//     → this is an intervention on the current task, appended to the list
//
// Emits nothing.
package main

import (
	"github.com/djethino/claude-guardian-coach/internal/config"
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
	record(input)
}

func record(input *protocol.HookInput) {
	cwd := input.WorkingDir()
	sessionID := input.SessionID
	if cwd == "" || sessionID == "" || input.Prompt == "" {
		return
	}

	ctx := taskcontext.Load(cwd, sessionID)
	if ctx == nil || ctx.TaskCompleted {
		ctx = taskcontext.NewTask(input.Prompt)
	} else {
		ctx.AddIntervention(input.Prompt)
	}

	if err := ctx.Save(cwd, sessionID); err != nil {
		return
	}

	cfg := config.Load(cwd)
	taskcontext.CleanupOld(cwd, cfg.MaxContextFiles)
}
