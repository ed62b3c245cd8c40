package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"ytup/internal/config"
	"ytup/internal/faults"
	"ytup/internal/publish"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUpload_MissingClientSecretStopsBeforeAnyClient(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "diag.log")
	idsPath := filepath.Join(tempDir, "ids.txt")
	t.Setenv(config.EnvClientSecretPath, "")
	t.Setenv(config.EnvLogPath, logPath)
	t.Setenv(config.EnvIDRecordPath, idsPath)

	err := runUpload(uploadCmd, nil)
	require.Error(t, err)
	assert.Equal(t, faults.ConfigMissing, faults.CategoryOf(err))

	// The diagnostic log names the category; the id record is untouched.
	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "ConfigMissing")

	_, statErr := os.Stat(idsPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildRequest_DefaultsToExample(t *testing.T) {
	requestPath = ""
	req, err := buildRequest(uploadCmd)
	require.NoError(t, err)
	assert.Equal(t, publish.ExampleRequest(), req)
}

func TestBuildRequest_FlagOverrides(t *testing.T) {
	requestPath = ""
	flags := uploadCmd.Flags()
	require.NoError(t, flags.Set("video", "clips/other.mp4"))
	require.NoError(t, flags.Set("title", "Overridden"))
	require.NoError(t, flags.Set("schedule", "true"))
	t.Cleanup(func() {
		// Reset flag state for other tests in this package.
		for _, name := range []string{"video", "title", "schedule"} {
			flags.Lookup(name).Changed = false
		}
	})

	req, err := buildRequest(uploadCmd)
	require.NoError(t, err)
	assert.Equal(t, "clips/other.mp4", req.VideoPath)
	assert.Equal(t, "Overridden", req.Title)
	assert.False(t, req.PublishImmediately)
	// Untouched fields keep the example values.
	assert.Equal(t, publish.ExampleRequest().Description, req.Description)
}

func TestBuildRequest_RequestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte("videoPath: clips/from-file.mp4\ntitle: From file\n"), 0644))

	requestPath = path
	t.Cleanup(func() { requestPath = "" })

	req, err := buildRequest(uploadCmd)
	require.NoError(t, err)
	assert.Equal(t, "clips/from-file.mp4", req.VideoPath)
	assert.Equal(t, "From file", req.Title)
	assert.True(t, req.PublishImmediately)
}
