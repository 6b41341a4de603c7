package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const notesJSON = `{
  "overview": ["Reviewed budget"],
  "actionGroups": [
    {"assignee": "Alice", "tasks": [{"id": "a1", "task": "Write report"}, {"id": "a2", "task": "write report"}]}
  ]
}`

func TestValidateCommand(t *testing.T) {
	path := writeFile(t, "notes.json", notesJSON)

	out, err := run(t, "validate", path, "-o", "json")
	require.ErrorIs(t, err, errValidation)

	var report struct {
		OK     bool              `json:"ok"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.OK)
	assert.Contains(t, report.Errors, "a2")
}

func TestPromptCommand(t *testing.T) {
	path := writeFile(t, "notes.json", `{"overview":["Reviewed budget"]}`)

	out, err := run(t, "prompt", path)
	require.NoError(t, err)
	assert.Contains(t, out, "📋 Meeting Overview:\nReviewed budget")
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "reply.txt", "Meeting Summary:\n- Reviewed budget\nTags: #budget")

	out, err := run(t, "parse", path)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, []interface{}{"Reviewed budget"}, parsed["overview"])
	assert.Equal(t, []interface{}{"budget"}, parsed["tags"])

	_, err = run(t, "parse", path, "--mode", "structured")
	assert.Error(t, err)
}

func TestSuggestionsCommand(t *testing.T) {
	path := writeFile(t, "reply.txt", "Action Items:\n1. Book a review\n2. Send notes")

	out, err := run(t, "suggestions", path, "-o", "json")
	require.NoError(t, err)

	var items []string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []string{"Book a review", "Send notes"}, items)
}

func TestEmailsCommand(t *testing.T) {
	path := writeFile(t, "notes.json", `{"actionGroups":[{"assignee":"Bob","tasks":[{"task":"Ship"}]}]}`)

	out, err := run(t, "emails", path, "--sender", "Dana", "-o", "json")
	require.NoError(t, err)

	var emails []struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &emails))
	require.Len(t, emails, 1)
	assert.Contains(t, emails[0].Email, "Best regards,\nDana")
}

func TestInvalidOutputFormat(t *testing.T) {
	path := writeFile(t, "reply.txt", "x")
	_, err := run(t, "suggestions", path, "-o", "xml")
	assert.Error(t, err)
}
