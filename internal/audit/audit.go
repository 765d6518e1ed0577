// Package audit appends a structured log line for every non-silent
// decision under .claude/guardian-coach/. Logging is strictly best
// effort: a sink that cannot be opened yields a no-op logger so the
// decision path is never affected.
package audit

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDirName  = "guardian-coach"
	logFileName = "decisions.log"
)

// maxReasonEcho bounds logged reasons; full text already went to the host.
const maxReasonEcho = 200

// Logger writes decision events to the per-project log file.
type Logger struct {
	log    zerolog.Logger
	closer io.Closer
}

// Open returns a logger appending to workDir/.claude/guardian-coach/decisions.log.
// Any failure yields a disabled logger.
func Open(workDir string) *Logger {
	if workDir == "" {
		return &Logger{log: zerolog.Nop()}
	}

	dir := filepath.Join(workDir, ".claude", logDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &Logger{log: zerolog.Nop()}
	}

	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &Logger{log: zerolog.Nop()}
	}

	return &Logger{
		log:    zerolog.New(f).With().Timestamp().Logger(),
		closer: f,
	}
}

// Decision records one emitted decision.
func (l *Logger) Decision(toolName, permission, reason string) {
	l.log.Info().
		Str("tool", toolName).
		Str("decision", permission).
		Str("reason", truncate(reason, maxReasonEcho)).
		Msg("decision")
}

// Close releases the underlying file, if any.
func (l *Logger) Close() {
	if l.closer != nil {
		l.closer.Close()
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
