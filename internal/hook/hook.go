// Package hook wires the PreToolUse decision engine together: path
// correction for path-bearing tools, coaching for Bash, nothing for
// everything else.
package hook

import (
	"strings"

	"github.com/djethino/claude-guardian-coach/internal/decision"
	"github.com/djethino/claude-guardian-coach/internal/pathfix"
	"github.com/djethino/claude-guardian-coach/internal/protocol"
	"github.com/djethino/claude-guardian-coach/internal/rules"
	"github.com/djethino/claude-guardian-coach/internal/shellwords"
)

// Options configures a single evaluation. External inputs (the env toggle)
// are resolved by the caller and passed in explicitly.
type Options struct {
	// CoachingEnabled gates the Bash rule set. Path correction is always
	// active.
	CoachingEnabled bool
}

// pathTools are the tools whose file_path gets relativized.
var pathTools = map[string]bool{
	"Read":      true,
	"Edit":      true,
	"Write":     true,
	"MultiEdit": true,
}

// Evaluate runs one request through the decision engine. A nil result is a
// silent allow; every malformed or unrecognized input degrades to nil
// rather than an error (fail-open).
func Evaluate(input *protocol.HookInput, opts Options) *protocol.HookOutput {
	if input == nil || input.ToolInput == nil {
		return nil
	}

	if pathTools[input.ToolName] {
		corr := pathfix.Correct(input.FilePath(), input.WorkingDir())
		if corr == nil {
			return nil
		}
		return decision.PathCorrection(input.ToolName, input.ToolInput, corr)
	}

	if input.ToolName != "Bash" {
		return nil
	}

	command := input.Command()
	if strings.TrimSpace(command) == "" {
		return nil
	}

	if !opts.CoachingEnabled {
		return nil
	}

	tokens, ok := shellwords.Split(command)
	if !ok {
		return nil
	}

	verdict := rules.Classify(tokens, command)
	if verdict == nil {
		return nil
	}

	return decision.Coaching(verdict, command)
}
