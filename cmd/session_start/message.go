package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/djethino/claude-guardian-coach/internal/taskcontext"
)

const (
	// shownInterventions limits the injected context to the most recent
	// user interventions; interventionEcho bounds each one.
	shownInterventions = 5
	interventionEcho   = 200

	// recentFilesLimit caps the mtime-based scan for files modified
	// outside the tracked file-access log.
	recentFilesLimit = 15

	clockFormat = "15:04"
)

// accessRank orders access kinds for display: read before update before write.
var accessRank = map[string]int{
	taskcontext.AccessRead:   0,
	taskcontext.AccessUpdate: 1,
	taskcontext.AccessWrite:  2,
}

// buildCompactionContext renders the post-compaction context message from
// the stored task context. A nil ctx still produces the framing reminder.
func buildCompactionContext(ctx *taskcontext.TaskContext, cwd string, now time.Time) string {
	lines := []string{
		"⚠️ CONTEXT COMPACTED",
		"",
		"The context was compacted. You received a summary, but it captures the WHAT, rarely the WHY.",
		"",
	}

	if ctx != nil {
		hasStart := !ctx.InitialTimestamp.IsZero()
		if hasStart {
			lines = append(lines,
				fmt.Sprintf("📅 Task started at: %s", ctx.InitialTimestamp.Format(clockFormat)),
				fmt.Sprintf("📅 Compacted at: %s", now.Format(clockFormat)),
				"")
		}

		if ctx.InitialPrompt != "" {
			lines = append(lines, "📋 INITIAL REQUEST:", ctx.InitialPrompt, "")
		}

		if n := len(ctx.Interventions); n > 0 {
			lines = append(lines, "💬 USER INTERVENTIONS:")
			start := 0
			if n > shownInterventions {
				start = n - shownInterventions
			}
			for _, interv := range ctx.Interventions[start:] {
				lines = append(lines, "  - "+truncate(interv.Prompt, interventionEcho))
			}
			lines = append(lines, "")
		}

		// File sections need the start timestamp as a reference point.
		if hasStart {
			lines = append(lines, fileAccessLines(ctx, cwd)...)
			lines = append(lines, otherRecentFileLines(ctx, cwd)...)
		}
	} else {
		lines = append(lines, "(No task context captured)", "")
	}

	lines = append(lines,
		"Review this information and continue the task.",
		"",
		"While working, if you feel that:",
		"- You are lost or no longer understand the WHY",
		"- You are about to simplify or cut corners to go faster",
		"- You might break something that worked before",
		"",
		"→ STOP and check in with the user:",
		"  - What has been completely done",
		"  - What remains to do",
		"  - What you are not sure you understand")

	return strings.Join(lines, "\n")
}

// fileAccessLines lists the files recorded by the PostToolUse hook.
func fileAccessLines(ctx *taskcontext.TaskContext, cwd string) []string {
	if len(ctx.FileAccess) == 0 {
		return nil
	}

	lines := []string{"📁 FILES ACCESSED DURING THIS TASK:"}
	for _, path := range ctx.AccessedPaths() {
		kinds := append([]string(nil), ctx.FileAccess[path]...)
		sort.Slice(kinds, func(i, j int) bool { return accessRank[kinds[i]] < accessRank[kinds[j]] })

		entry := fmt.Sprintf("  - %s [%s]", path, strings.Join(kinds, "+"))
		if mtime := fileMTime(cwd, path); mtime != "" {
			entry += " (" + mtime + ")"
		}
		lines = append(lines, entry)
	}
	return append(lines, "")
}

// otherRecentFileLines lists files modified since task start that the
// file-access log missed: subagents, other instances, external tools.
func otherRecentFileLines(ctx *taskcontext.TaskContext, cwd string) []string {
	recent := taskcontext.RecentFiles(cwd, ctx.InitialTimestamp, recentFilesLimit)

	var lines []string
	for _, rf := range recent {
		if _, tracked := ctx.FileAccess[rf.Path]; tracked {
			continue
		}
		lines = append(lines, fmt.Sprintf("  - %s (%s)", rf.Path, rf.MTime.Format(clockFormat)))
	}
	if len(lines) == 0 {
		return nil
	}

	header := []string{
		"📁 OTHER FILES MODIFIED SINCE TASK START:",
		"   (subagents, other instances, external tools)",
	}
	return append(append(header, lines...), "")
}

func fileMTime(cwd, path string) string {
	info, err := os.Stat(filepath.Join(cwd, path))
	if err != nil {
		return ""
	}
	return info.ModTime().Format(clockFormat)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
