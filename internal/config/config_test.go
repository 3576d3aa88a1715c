package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mappy/internal/mapfile"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "sessions")

	cfg := "store: " + store + "\nnewline: crlf\nstrict: true\nchunk: 25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mappy.yaml"), []byte(cfg), 0o644))

	t.Setenv("MAPPY_CONFIG_PATH", dir)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, store, c.StorePath)
	assert.Equal(t, mapfile.CRLF, c.Newline)
	assert.True(t, c.Strict)
	assert.Equal(t, 25, c.ChunkSize)
	assert.Equal(t, mapfile.Format{Newline: mapfile.CRLF, TrailingNewline: true}, c.NewFormat())
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MAPPY_CONFIG_PATH", dir)
	t.Setenv("MAPPY_STORE", filepath.Join(dir, "env"))
	t.Setenv("MAPPY_NEWLINE", "cr")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "env"), c.StorePath)
	assert.Equal(t, mapfile.CR, c.Newline)
	assert.False(t, c.Strict)
	assert.Equal(t, 500, c.ChunkSize)
}

func TestLoad_BadNewline(t *testing.T) {
	t.Setenv("MAPPY_CONFIG_PATH", t.TempDir())
	t.Setenv("MAPPY_NEWLINE", "mac")

	_, err := Load()
	assert.ErrorIs(t, err, mapfile.ErrUnknownNewline)
}
