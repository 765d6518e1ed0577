package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	raw := `{
		"session_id": "abc-123",
		"tool_name": "Bash",
		"tool_input": {"command": "ls -la"},
		"cwd": "/home/u/proj"
	}`

	input, err := ReadInput(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", input.SessionID)
	assert.Equal(t, "Bash", input.ToolName)
	assert.Equal(t, "ls -la", input.Command())
	assert.Equal(t, "/home/u/proj", input.WorkingDir())
}

func TestReadInputEmpty(t *testing.T) {
	_, err := ReadInput(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestReadInputMalformed(t *testing.T) {
	for _, raw := range []string{
		"not json",
		`{"tool_name": `,
		`[1, 2, 3]`,
		`{"tool_input": "not an object"}`,
		`{"tool_name": 42}`,
	} {
		_, err := ReadInput(strings.NewReader(raw))
		assert.Error(t, err, raw)
	}
}

func TestReadInputMissingFields(t *testing.T) {
	input, err := ReadInput(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, input.ToolName)
	assert.Nil(t, input.ToolInput)
	assert.Empty(t, input.Command())
	assert.Empty(t, input.FilePath())
}

func TestWorkingDirTrims(t *testing.T) {
	input := &HookInput{Cwd: "  /home/u/proj \n"}
	assert.Equal(t, "/home/u/proj", input.WorkingDir())

	assert.Empty(t, (&HookInput{Cwd: "   "}).WorkingDir())
	assert.Empty(t, (&HookInput{}).WorkingDir())
}

func TestStringFields(t *testing.T) {
	input := &HookInput{ToolInput: map[string]interface{}{
		"file_path":     "src/a.py",
		"notebook_path": "nb.ipynb",
		"command":       42,
	}}

	assert.Equal(t, "src/a.py", input.FilePath())
	assert.Equal(t, "nb.ipynb", input.NotebookPath())
	// Non-string values read as absent.
	assert.Empty(t, input.Command())
}
