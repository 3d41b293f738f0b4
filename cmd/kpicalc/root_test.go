package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"contributorkpi/kpi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlBundle = `user:
  id: u1
  role: manager
tasks:
  - id: t1
    assignee_id: u1
    status: completed
    priority: high
    created_at: "2026-10-01T09:00:00Z"
    completed_at: "2026-10-04T09:00:00Z"
    due_date: "2026-10-10"
projects:
  - id: p1
    status: completed
    team_members: [u1]
    created_at: "2026-09-20"
documents:
  - id: d1
    uploaded_by: u1
    review_note: "Great work. Rating: 4.5/5"
    uploaded_at: "2026-10-12"
`

const jsonBundle = `{
  "user": {"id": "u1", "role": "member"},
  "tasks": [],
  "projects": [],
  "time_logs": [],
  "comments": [],
  "documents": []
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadBundle_YAML(t *testing.T) {
	file, err := loadBundle(writeFile(t, "bundle.yaml", yamlBundle))
	require.NoError(t, err)

	assert.Equal(t, "u1", file.User.ID)
	require.Len(t, file.Tasks, 1)
	assert.Equal(t, "2026-10-10", file.Tasks[0].DueDate)
	require.Len(t, file.Projects, 1)
	assert.Equal(t, []string{"u1"}, file.Projects[0].TeamMembers)
	require.Len(t, file.Documents, 1)
}

func TestLoadBundle_Errors(t *testing.T) {
	_, err := loadBundle(writeFile(t, "bundle.txt", "x"))
	assert.Error(t, err)

	_, err = loadBundle(writeFile(t, "bundle.json", "{"))
	assert.Error(t, err)

	_, err = loadBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRootCmd_JSONOutput(t *testing.T) {
	path := writeFile(t, "bundle.yml", yamlBundle)

	out, err := execute(t, path, "--format", "json", "--now", "2026-10-15T12:00:00Z")
	require.NoError(t, err)

	var result kpi.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.QualityOverride)
	assert.Equal(t, 90.0, result.Quality)
	assert.Equal(t, 90.0, result.Overall)
	assert.Equal(t, "A", result.Grade)
	assert.Equal(t, 100.0, result.Delivery)
}

func TestRootCmd_TextOutput(t *testing.T) {
	path := writeFile(t, "bundle.json", jsonBundle)

	out, err := execute(t, path, "--window", "ytd", "--role", "director", "--now", "2026-10-15T12:00:00Z")
	require.NoError(t, err)

	assert.Contains(t, out, "User:          u1 (director)")
	assert.Contains(t, out, "Efficiency:    85.0")
	assert.NotContains(t, out, "Note:")
}

func TestRootCmd_Errors(t *testing.T) {
	path := writeFile(t, "bundle.json", jsonBundle)

	_, err := execute(t, path, "--window", "weekly")
	assert.ErrorIs(t, err, kpi.ErrInvalidTimeWindow)

	_, err = execute(t, path, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, path, "--now", "yesterday")
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err)

	noUser := writeFile(t, "anon.json", `{"tasks": []}`)
	_, err = execute(t, noUser)
	assert.Error(t, err)
}
