// Package taskcontext persists per-session task context under
// .claude/task-contexts/ so it survives context compaction.
//
// Each session gets one JSON file keyed by its session ID, holding the
// initial task prompt, later user interventions, the files the agent
// touched, and the task_completed lifecycle flag set by the Stop hook.
package taskcontext

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/djethino/claude-guardian-coach/internal/validation"
)

// ContextsDirName is the directory under .claude/ holding context files.
const ContextsDirName = "task-contexts"

const (
	filePermission = 0o600
	dirPermission  = 0o700
)

// Prompt truncation bounds. Interventions are kept shorter than the
// initial prompt because only their gist matters after compaction.
const (
	MaxInitialPromptLen = 1000
	MaxInterventionLen  = 500
)

// Access kinds recorded per file.
const (
	AccessRead   = "read"
	AccessUpdate = "update"
	AccessWrite  = "write"
)

// Intervention is a user prompt submitted mid-task.
type Intervention struct {
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
}

// TaskContext is the persisted state for one session's current task.
type TaskContext struct {
	InitialPrompt    string              `json:"initial_prompt,omitempty"`
	InitialTimestamp time.Time           `json:"initial_timestamp"`
	Interventions    []Intervention      `json:"interventions"`
	FileAccess       map[string][]string `json:"file_access,omitempty"`
	TaskCompleted    bool                `json:"task_completed"`
}

// NewTask starts a fresh context for prompt, clearing the completed flag.
func NewTask(prompt string) *TaskContext {
	return &TaskContext{
		InitialPrompt:    truncate(prompt, MaxInitialPromptLen),
		InitialTimestamp: time.Now(),
	}
}

// Dir returns the task-contexts directory for cwd.
func Dir(cwd string) string {
	return filepath.Join(cwd, ".claude", ContextsDirName)
}

// Path returns the context file path for a session, rejecting session IDs
// that are unsafe as filename components.
func Path(cwd, sessionID string) (string, error) {
	if err := validation.ValidateSessionID(sessionID); err != nil {
		return "", err
	}
	return filepath.Join(Dir(cwd), sessionID+".json"), nil
}

// Load returns the stored context for a session, or nil when there is
// none. Unreadable and corrupt files count as none; the caller starts
// over rather than failing.
func Load(cwd, sessionID string) *TaskContext {
	path, err := Path(cwd, sessionID)
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var ctx TaskContext
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil
	}

	return &ctx
}

// Save writes the context for a session, creating the directory as
// needed.
func (c *TaskContext) Save(cwd, sessionID string) error {
	path, err := Path(cwd, sessionID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, filePermission)
}

// Reset clears the session's context. The completed flag stays set so the
// next user prompt starts a new task instead of extending a stale one.
func Reset(cwd, sessionID string) error {
	empty := &TaskContext{TaskCompleted: true}
	return empty.Save(cwd, sessionID)
}

// AddIntervention appends a mid-task user prompt.
func (c *TaskContext) AddIntervention(prompt string) {
	c.Interventions = append(c.Interventions, Intervention{
		Timestamp: time.Now(),
		Prompt:    truncate(prompt, MaxInterventionLen),
	})
}

// RecordAccess notes that a file was touched with the given access kind.
// Kinds accumulate per path without duplicates.
func (c *TaskContext) RecordAccess(path, kind string) {
	if c.FileAccess == nil {
		c.FileAccess = make(map[string][]string)
	}
	for _, k := range c.FileAccess[path] {
		if k == kind {
			return
		}
	}
	c.FileAccess[path] = append(c.FileAccess[path], kind)
}

// AccessedPaths returns the recorded paths in sorted order.
func (c *TaskContext) AccessedPaths() []string {
	paths := make([]string, 0, len(c.FileAccess))
	for p := range c.FileAccess {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// CleanupOld prunes the contexts directory down to the keep most recent
// files by mtime. Best effort: errors are swallowed, a failed prune never
// affects the hook outcome.
func CleanupOld(cwd string, keep int) {
	entries, err := os.ReadDir(Dir(cwd))
	if err != nil {
		return
	}

	type aged struct {
		name  string
		mtime time.Time
	}
	var files []aged
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, aged{name: e.Name(), mtime: info.ModTime()})
	}

	if len(files) <= keep {
		return
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mtime.Before(files[j].mtime) })
	for _, f := range files[:len(files)-keep] {
		os.Remove(filepath.Join(Dir(cwd), f.name))
	}
}

// NormalizeRelPath converts a file path to a cwd-relative, forward-slash
// form for stable context keys. Paths outside cwd stay absolute.
func NormalizeRelPath(filePath, cwd string) string {
	if filepath.IsAbs(filePath) && cwd != "" {
		if rel, err := filepath.Rel(cwd, filePath); err == nil && !strings.HasPrefix(rel, "..") {
			filePath = rel
		}
	}
	return strings.ReplaceAll(filePath, "\\", "/")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
