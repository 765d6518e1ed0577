package taskcontext

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RecentFile is a file modified since some reference time.
type RecentFile struct {
	Path  string
	MTime time.Time
}

// Directories that never carry task-relevant modifications.
var skipDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
}

// RecentFiles walks cwd and returns files modified at or after since,
// newest first, capped at limit. Hidden directories and dependency
// directories are skipped. Walk errors are swallowed; this feeds an
// informational message, never a decision.
func RecentFiles(cwd string, since time.Time, limit int) []RecentFile {
	var found []RecentFile

	filepath.WalkDir(cwd, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable directory is skipped; a single bad file must
			// not take the rest of its directory with it.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != cwd && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(since) {
			return nil
		}

		rel, err := filepath.Rel(cwd, path)
		if err != nil {
			return nil
		}
		found = append(found, RecentFile{
			Path:  strings.ReplaceAll(rel, "\\", "/"),
			MTime: info.ModTime(),
		})
		return nil
	})

	sort.Slice(found, func(i, j int) bool { return found[i].MTime.After(found[j].MTime) })
	if len(found) > limit {
		found = found[:limit]
	}
	return found
}
