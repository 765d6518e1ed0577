// Package decision assembles the final hook responses from path
// corrections and coaching verdicts.
package decision

import (
	"fmt"

	"github.com/djethino/claude-guardian-coach/internal/pathfix"
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/rules"
)

// maxCommandEcho bounds how much of the raw command a denial echoes back.
const maxCommandEcho = 300

// PathCorrection builds the response for a corrected file path.
//
// Edit is denied instead of rewritten: the host validates the file's
// read-state against the original path before updatedInput would apply,
// so a silent rewrite desynchronizes state. The agent must resubmit with
// the corrected path. Read/Write/MultiEdit are allowed with the path
// field rewritten in place.
func PathCorrection(toolName string, toolInput map[string]interface{}, corr *pathfix.Correction) *protocol.HookOutput {
	if corr == nil {
		return nil
	}

	if toolName == "Edit" {
		reason := fmt.Sprintf(
			"PATH CORRECTION: Use relative path instead.\n\n"+
				"Change: %s\n"+
				"To:     %s\n\n"+
				"Reason: %s",
			corr.Original, corr.Corrected, corr.Reason)
		return &protocol.HookOutput{
			HookSpecificOutput: &protocol.HookSpecificOutput{
				HookEventName:            protocol.EventPreToolUse,
				PermissionDecision:       protocol.PermissionDeny,
				PermissionDecisionReason: reason,
			},
		}
	}

	updated := make(map[string]interface{}, len(toolInput))
	for k, v := range toolInput {
		updated[k] = v
	}
	updated["file_path"] = corr.Corrected

	return &protocol.HookOutput{
		HookSpecificOutput: &protocol.HookSpecificOutput{
			HookEventName:      protocol.EventPreToolUse,
			PermissionDecision: protocol.PermissionAllow,
			UpdatedInput:       updated,
			SystemMessage:      fmt.Sprintf("PATH CORRECTED: %s -> %s", corr.Original, corr.Corrected),
		},
	}
}

// Coaching builds the deny response for a coaching verdict on a Bash
// command. The reason carries the verdict message and the offending
// command, truncated to keep the denial readable.
func Coaching(v *rules.Verdict, command string) *protocol.HookOutput {
	if v == nil {
		return nil
	}

	return &protocol.HookOutput{
		HookSpecificOutput: &protocol.HookSpecificOutput{
			HookEventName:            protocol.EventPreToolUse,
			PermissionDecision:       protocol.PermissionDeny,
			PermissionDecisionReason: fmt.Sprintf("%s\n\nCommand: %s\n", v.Message, truncate(command, maxCommandEcho)),
		},
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
