package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendOneIDPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_ids.txt")
	log := New(path)

	require.NoError(t, log.Append("abc123"))
	require.NoError(t, log.Append("def456"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123\ndef456\n", string(data))
}

func TestLog_AppendPreservesExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0644))

	require.NoError(t, New(path).Append("later"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "earlier\nlater\n", string(data))
}

func TestLog_AppendFailsOnUnwritablePath(t *testing.T) {
	err := New(filepath.Join(t.TempDir(), "missing-dir", "ids.txt")).Append("abc")
	assert.Error(t, err)
}
