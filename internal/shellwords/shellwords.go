// Package shellwords splits shell commands into words and answers
// quote-aware questions about raw command strings. It is not a shell
// parser: it never expands, resolves, or executes anything.
package shellwords

import "strings"

// Split breaks command into POSIX-style shell words: whitespace separates
// words, single quotes preserve content literally, double quotes preserve
// content except for backslash escapes of `"`, `\`, `$` and a backtick,
// and an unquoted backslash escapes the next character.
//
// ok is false when the command cannot be split: unterminated quoting, a
// dangling escape, or nothing but whitespace. Callers must treat that the
// same as a command that produced zero words.
func Split(command string) ([]string, bool) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, false
	}

	var words []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	escaped := false
	// Tracks whether the current word has begun, so empty quoted
	// strings like "" still produce a word.
	hasWord := false

	for i := 0; i < len(command); i++ {
		ch := command[i]

		if escaped {
			current.WriteByte(ch)
			escaped = false
			hasWord = true
			continue
		}

		if ch == '\\' && !inSingle {
			if inDouble {
				if i+1 < len(command) {
					switch command[i+1] {
					case '"', '\\', '$', '`':
						escaped = true
						continue
					}
				}
				current.WriteByte(ch)
				hasWord = true
				continue
			}
			escaped = true
			continue
		}

		if ch == '\'' && !inDouble {
			inSingle = !inSingle
			hasWord = true
			continue
		}

		if ch == '"' && !inSingle {
			inDouble = !inDouble
			hasWord = true
			continue
		}

		if (ch == ' ' || ch == '\t' || ch == '\n') && !inSingle && !inDouble {
			if hasWord {
				words = append(words, current.String())
				current.Reset()
				hasWord = false
			}
			continue
		}

		current.WriteByte(ch)
		hasWord = true
	}

	if inSingle || inDouble || escaped {
		return nil, false
	}

	if hasWord {
		words = append(words, current.String())
	}

	return words, true
}
