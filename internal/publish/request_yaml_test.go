package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRequest(t *testing.T) {
	path := writeRequestFile(t, `videoPath: clips/take1.mp4
thumbnailPath: clips/take1.jpg
title: "Take one"
description: "First take"
tags: [alpha, beta]
publishImmediately: false
shorts: true
`)

	req, err := LoadRequest(path)
	require.NoError(t, err)
	assert.Equal(t, "clips/take1.mp4", req.VideoPath)
	assert.Equal(t, "clips/take1.jpg", req.ThumbnailPath)
	assert.Equal(t, "Take one", req.Title)
	assert.Equal(t, "First take", req.Description)
	assert.Equal(t, []string{"alpha", "beta"}, req.Tags)
	assert.False(t, req.PublishImmediately)
	assert.True(t, req.IsShorts)
}

func TestLoadRequest_PublishImmediatelyDefaultsTrue(t *testing.T) {
	path := writeRequestFile(t, `videoPath: clips/take1.mp4
title: "Take one"
`)

	req, err := LoadRequest(path)
	require.NoError(t, err)
	assert.True(t, req.PublishImmediately)
	assert.False(t, req.IsShorts)
}

func TestLoadRequest_RequiresVideoPath(t *testing.T) {
	path := writeRequestFile(t, `title: "No video"`)

	_, err := LoadRequest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "videoPath is required")
}

func TestLoadRequest_MissingFile(t *testing.T) {
	_, err := LoadRequest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRequest_MalformedYAML(t *testing.T) {
	path := writeRequestFile(t, "videoPath: [unclosed")

	_, err := LoadRequest(path)
	assert.Error(t, err)
}
