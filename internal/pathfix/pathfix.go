// Package pathfix rewrites absolute file paths to paths relative to the
// working directory. Absolute paths desynchronize the host's file-state
// tracking and trigger "File has been unexpectedly modified" errors, so
// any path that is a strict descendant of cwd gets its prefix stripped.
//
// Everything here is pure string transformation: no filesystem access, no
// symlink resolution.
package pathfix

import (
	"fmt"
	"strings"
)

// Correction describes a path rewrite. Absence (nil) means the path needs
// no correction.
type Correction struct {
	Original  string
	Corrected string
	Reason    string
}

// Correct returns the relative-path correction for filePath against
// workDir, or nil when no correction applies: empty inputs, relative
// paths, paths outside workDir, and workDir itself all pass through.
// Idempotent: a corrected path is relative, so re-running returns nil.
func Correct(filePath, workDir string) *Correction {
	if filePath == "" || workDir == "" {
		return nil
	}

	cwd := Normalize(workDir)
	fp := Normalize(filePath)

	if !containedIn(fp, cwd) {
		return nil
	}

	rel := strings.TrimPrefix(fp[len(cwd):], "/")
	reason := fmt.Sprintf(
		"COACHING: Use relative path instead of absolute path.\n"+
			"Replace: %s\n"+
			"With: %s\n\n"+
			"Absolute paths cause 'File unexpectedly modified' errors.",
		filePath, rel)

	return &Correction{Original: filePath, Corrected: rel, Reason: reason}
}

// Normalize canonicalizes a path for comparison: backslashes become
// forward slashes, trailing slashes are dropped, and a Windows drive
// letter prefix X: becomes /x.
func Normalize(path string) string {
	n := strings.ReplaceAll(path, "\\", "/")
	n = strings.TrimRight(n, "/")

	if len(n) >= 2 && n[1] == ':' && isASCIILetter(n[0]) {
		n = "/" + strings.ToLower(n[:1]) + n[2:]
	}

	return n
}

// containedIn reports whether a normalized file path is an absolute strict
// descendant of the normalized working directory. The directory itself is
// excluded: an exact match is not a correctable file path.
func containedIn(filePath, cwd string) bool {
	if !strings.HasPrefix(filePath, "/") {
		return false
	}
	if filePath == cwd {
		return false
	}
	return strings.HasPrefix(filePath, cwd+"/")
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
