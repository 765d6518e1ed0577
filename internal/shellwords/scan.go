package shellwords

import "strings"

// HasUnquoted reports whether ch occurs in command outside any single- or
// double-quoted span. Used for redirect (>) and pipe (|) detection where
// token boundaries are not enough.
func HasUnquoted(command string, ch byte) bool {
	inSingle := false
	inDouble := false
	for i := 0; i < len(command); i++ {
		c := command[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == ch && !inSingle && !inDouble:
			return true
		}
	}
	return false
}

// HasHeredocWrite reports whether command looks like a heredoc file write:
// a << marker together with cat and an unquoted redirect. The command
// substitution form $(cat ...) is reading, not writing, and never matches.
func HasHeredocWrite(command string) bool {
	if !strings.Contains(command, "<<") {
		return false
	}
	lower := strings.ToLower(command)
	if !strings.Contains(lower, "cat") {
		return false
	}
	if strings.Contains(lower, "$(cat") {
		return false
	}
	return HasUnquoted(command, '>')
}

// PipeReceivesInput reports whether head consumes piped input in command,
// i.e. the command contains a pipe and head is not the first pipeline
// segment. "cat f | grep x" receives input for head "grep";
// "grep x f | wc -l" does not.
func PipeReceivesInput(command, head string) bool {
	parts := strings.Split(command, "|")
	if len(parts) <= 1 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(parts[0]))
	return !strings.HasPrefix(first, strings.ToLower(head))
}
