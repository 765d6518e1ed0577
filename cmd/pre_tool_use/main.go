// PreToolUse hook for Guardian Coach.
//
// Inspects a tool call before the host executes it and either:
//  1. Corrects absolute file paths to relative ones (Read/Edit/Write/MultiEdit)
//  2. Coaches the agent toward native tools instead of equivalent Bash commands
//
// Exit behavior:
//   - Exit 0 with JSON carrying permissionDecision "deny" = block the call
//   - Exit 0 with JSON carrying "allow" + updatedInput = rewrite the call
//   - Exit 0 with no output = allow the call unchanged
package main

import (
	"github.com/djethino/claude-guardian-coach/internal/audit"
	"github.com/djethino/claude-guardian-coach/internal/config"
	"github.com/djethino/claude-guardian-coach/internal/hook"
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/validation"
)

func main() {
	// Every failure mode degrades to "no output"; exit status is always 0.
	run()
}

func run() {
	input, err := protocol.ReadStdin()
	if err != nil {
		return
	}

	stateDir := input.WorkingDir()
	if stateDir == "" {
		stateDir = validation.GetWorkDir()
	}
	cfg := config.Load(stateDir)

	output := hook.Evaluate(input, hook.Options{CoachingEnabled: cfg.CoachingEnabled})
	if output == nil {
		return
	}

	if cfg.DecisionLog {
		logger := audit.Open(stateDir)
		defer logger.Close()
		hso := output.HookSpecificOutput
		logger.Decision(input.ToolName, hso.PermissionDecision, hso.PermissionDecisionReason)
	}

	protocol.WriteOutput(output)
}
