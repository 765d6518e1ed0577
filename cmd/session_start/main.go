// SessionStart hook for Guardian Coach.
//
// Two cases, keyed on the request's source field:
//   - a genuinely new session (source != "compact"): reset the task
//     context, emit nothing
//   - resuming after compaction (source == "compact"): inject the
//     captured task context (the initial prompt, user interventions, and
//     the files touched during the task) as additional context, since
//     compaction summaries capture the WHAT but rarely the WHY
package main

import (
	"time"

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

	if input.Source != "compact" {
		taskcontext.Reset(cwd, sessionID)
		return
	}

	ctx := taskcontext.Load(cwd, sessionID)
	message := buildCompactionContext(ctx, cwd, time.Now())

	protocol.WriteOutput(&protocol.HookOutput{
		HookSpecificOutput: &protocol.HookSpecificOutput{
			HookEventName:     protocol.EventSessionStart,
			AdditionalContext: message,
		},
	})
}
