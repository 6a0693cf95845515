package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "srcmap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
output = "out.js"
source_root = "/src"

[[chunk]]
source = "a.js"
line = 1
column = 0
text = "var a = 1;"
`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.js", m.Output)
	assert.Equal(t, "/src", m.SourceRoot)
	require.Len(t, m.Chunks, 1)
	assert.Equal(t, "a.js", m.Chunks[0].Source)
	assert.Equal(t, 1, m.Chunks[0].Line)
}

func TestLoadMissingOutputRejected(t *testing.T) {
	path := writeManifest(t, `
[[chunk]]
text = "x"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNoChunksRejected(t *testing.T) {
	path := writeManifest(t, `output = "out.js"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadChunkWithSourceNeedsPositiveLine(t *testing.T) {
	path := writeManifest(t, `
output = "out.js"

[[chunk]]
source = "a.js"
line = 0
text = "x"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadUnmappedChunkNeedsNoLine(t *testing.T) {
	path := writeManifest(t, `
output = "out.js"

[[chunk]]
text = "plain text"
`)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Chunks, 1)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
