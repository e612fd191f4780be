package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryFixture = `{
	"version": "1.0",
	"lastUpdated": "2025-11-02",
	"activities": [
		{
			"id": "career.skills.extract",
			"displayName": "Extract Skills",
			"category": "analysis",
			"taskType": "extract-skills",
			"errorCodes": ["PARSE_ERROR"]
		},
		{
			"id": "career.assessment.build",
			"displayName": "Build Assessment",
			"category": "analysis",
			"taskType": "build-assessment",
			"errorCodes": ["PARSE_ERROR", "INSUFFICIENT_INPUT"]
		}
	]
}`

func writeFixture(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(writeFixture(t, registryFixture))
	require.NoError(t, err)

	assert.Equal(t, "1.0", reg.Version)
	require.Len(t, reg.Activities, 2)
	assert.NoError(t, reg.Validate())

	activity, ok := reg.FindByTaskType("build-assessment")
	require.True(t, ok)
	assert.Equal(t, "career.assessment.build", activity.ID)
	assert.Contains(t, activity.ErrorCodes, "INSUFFICIENT_INPUT")

	_, ok = reg.FindByTaskType("no-such-task")
	assert.False(t, ok)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidate_BadNaming(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "ExtractSkills", TaskType: "extract-skills"},
	}}
	assert.Error(t, reg.Validate())
}

func TestValidate_DuplicateTaskType(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "career.skills.extract", TaskType: "extract-skills"},
		{ID: "career.skills.extract-again", TaskType: "extract-skills"},
	}}
	assert.Error(t, reg.Validate())
}
