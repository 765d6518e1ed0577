// Package rules maps the shape of a Bash command to a coaching verdict
// pointing at the native tool that should be used instead.
//
// The rule set is an ordered table evaluated top to bottom; the first
// matching rule wins and evaluation stops. Mutating commands (rules for
// sed/awk/echo/printf) come before read-oriented ones because a command can
// textually satisfy several patterns, and the more consequential action
// should win.
package rules

import (
	"fmt"
	"strings"

	"github.com/djethino/claude-guardian-coach/internal/shellwords"
)

// Tool is the native tool a verdict coaches toward.
type Tool string

// Coached tools.
const (
	ToolEdit  Tool = "Edit"
	ToolWrite Tool = "Write"
	ToolRead  Tool = "Read"
	ToolGrep  Tool = "Grep"
	ToolGlob  Tool = "Glob"
)

// Verdict is an immutable coaching outcome produced by a rule.
type Verdict struct {
	Tool    Tool
	Message string
}

// Coaching message templates, filled with the offending command form.
const (
	coachEdit = "COACHING: Use the Edit tool instead of '%s' for file modifications. " +
		"The Edit tool is more reliable and won't cause 'File unexpectedly modified' errors."
	coachWrite = "COACHING: Use the Write tool instead of '%s' for creating/overwriting files. " +
		"The Write tool is the proper way to create files in Claude Code."
	coachRead = "COACHING: Use the Read tool instead of '%s' for viewing file contents. " +
		"The Read tool supports offset/limit for large files."
	coachGrep = "COACHING: Use the Grep tool instead of '%s' for searching file contents. " +
		"The Grep tool is optimized for Claude Code and provides better results."
	coachGlob = "COACHING: Use the Glob tool instead of '%s' for finding files. " +
		"The Glob tool is faster and designed for codebase exploration."
)

// A rule pairs a predicate over (tokens, raw command) with a verdict
// builder. Rules never combine: exactly one or none fires.
type rule struct {
	name  string
	match func(tokens []string, command string) bool
	build func(tokens []string, command string) Verdict
}

// table is the fixed priority order. Reordering entries changes which
// coaching message a multi-pattern command receives.
var table = []rule{
	{
		name: "sed-in-place",
		match: func(tokens []string, _ string) bool {
			return head(tokens) == "sed" && hasInPlaceFlag(tokens[1:])
		},
		build: verdict(ToolEdit, coachEdit, "sed -i"),
	},
	{
		name: "awk-redirect",
		match: func(tokens []string, command string) bool {
			return head(tokens) == "awk" && shellwords.HasUnquoted(command, '>')
		},
		build: verdict(ToolEdit, coachEdit, "awk with redirect"),
	},
	{
		name: "echo-or-heredoc-write",
		match: func(_ []string, command string) bool {
			return isEchoRedirect(command) || shellwords.HasHeredocWrite(command)
		},
		build: verdict(ToolWrite, coachWrite, "echo/cat redirect"),
	},
	{
		name: "printf-redirect",
		match: func(tokens []string, command string) bool {
			return head(tokens) == "printf" && shellwords.HasUnquoted(command, '>')
		},
		build: verdict(ToolWrite, coachWrite, "printf redirect"),
	},
	{
		name: "cat-read",
		match: func(tokens []string, command string) bool {
			if head(tokens) != "cat" || shellwords.HasHeredocWrite(command) {
				return false
			}
			if shellwords.HasUnquoted(command, '|') {
				return false
			}
			return len(tokens) > 1 && !strings.HasPrefix(tokens[1], "-")
		},
		build: verdict(ToolRead, coachRead, "cat"),
	},
	{
		name: "head-tail-read",
		match: func(tokens []string, command string) bool {
			h := head(tokens)
			if h != "head" && h != "tail" {
				return false
			}
			// Flag-only invocations usually receive piped input: cmd | head -50.
			return hasNonFlagArg(tokens[1:]) && !shellwords.HasUnquoted(command, '|')
		},
		build: func(tokens []string, _ string) Verdict {
			return Verdict{Tool: ToolRead, Message: fmt.Sprintf(coachRead, head(tokens))}
		},
	},
	{
		name: "grep-standalone",
		match: func(tokens []string, command string) bool {
			h := head(tokens)
			if h != "grep" && h != "rg" && h != "ripgrep" {
				return false
			}
			return !shellwords.PipeReceivesInput(command, h)
		},
		build: func(tokens []string, _ string) Verdict {
			return Verdict{Tool: ToolGrep, Message: fmt.Sprintf(coachGrep, head(tokens))}
		},
	},
	{
		name: "find-without-action",
		match: func(tokens []string, _ string) bool {
			return head(tokens) == "find" && !hasFindAction(tokens)
		},
		build: verdict(ToolGlob, coachGlob, "find"),
	},
	{
		name: "ls-glob-pattern",
		match: func(tokens []string, _ string) bool {
			return head(tokens) == "ls" && hasGlobArg(tokens[1:])
		},
		build: verdict(ToolGlob, coachGlob, "ls with pattern"),
	},
}

// Classify evaluates the rule table against a tokenized command. A nil
// result means no rule fired and the command passes silently.
func Classify(tokens []string, command string) *Verdict {
	if len(tokens) == 0 {
		return nil
	}
	for _, r := range table {
		if r.match(tokens, command) {
			v := r.build(tokens, command)
			return &v
		}
	}
	return nil
}

func verdict(tool Tool, template, cmd string) func([]string, string) Verdict {
	return func(_ []string, _ string) Verdict {
		return Verdict{Tool: tool, Message: fmt.Sprintf(template, cmd)}
	}
}

func head(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return strings.ToLower(tokens[0])
}

// hasInPlaceFlag matches -i, -i<suffix>, --in-place, and short-option
// clusters containing i (e.g. -ni, -ie).
func hasInPlaceFlag(args []string) bool {
	for _, tok := range args {
		if tok == "-i" || strings.HasPrefix(tok, "-i") || tok == "--in-place" {
			return true
		}
		if strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--") && strings.Contains(tok, "i") {
			return true
		}
	}
	return false
}

func isEchoRedirect(command string) bool {
	stripped := strings.TrimSpace(command)
	if !strings.HasPrefix(stripped, "echo ") && !strings.HasPrefix(stripped, "echo\t") {
		return false
	}
	return shellwords.HasUnquoted(command, '>')
}

func hasNonFlagArg(args []string) bool {
	for _, tok := range args {
		if !strings.HasPrefix(tok, "-") {
			return true
		}
	}
	return false
}

// hasFindAction reports whether find carries an action that makes it more
// than file discovery, which Glob cannot replace.
func hasFindAction(tokens []string) bool {
	for _, tok := range tokens {
		switch tok {
		case "-exec", "-execdir", "-delete", "-ok", "-okdir":
			return true
		}
	}
	return false
}

func hasGlobArg(args []string) bool {
	for _, tok := range args {
		if strings.HasPrefix(tok, "-") {
			continue
		}
		if strings.ContainsAny(tok, "*?[]") {
			return true
		}
	}
	return false
}
