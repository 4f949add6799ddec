package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-life/internal/board"
	"adaptive-life/internal/core"
)

func TestBindAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cols: 50\nrows: 40\nswitch_inertia: 7\n"), 0o644))

	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-rows", "60", "-backend", "dense", "-seed", "3"}))

	ec, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 50, ec.Cols)
	assert.Equal(t, 60, ec.Rows)
	assert.Equal(t, 7, ec.SwitchInertia)
	assert.Equal(t, "dense", ec.Backend)
	assert.Equal(t, int64(3), ec.Seed)
}

func TestResolveRejectsBadBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Backend = "quadtree"
	_, err := cfg.EngineConfig()
	assert.Error(t, err)
}

func TestViewSize(t *testing.T) {
	cfg := NewConfig()
	cfg.ViewW, cfg.ViewH = 80, 60

	bounded := board.New(board.KindHashed, 30, 0)
	assert.Equal(t, core.Size{W: 30, H: 60}, ViewSize(bounded, cfg))

	infinite := board.New(board.KindHashed, 0, 0)
	assert.Equal(t, core.Size{W: 80, H: 60}, ViewSize(infinite, cfg))
}
