package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gofluct/outline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	oc, err := cfg.OutlineConfig()
	require.NoError(t, err)
	assert.Equal(t, outline.DefaultConfig(), oc)
	assert.Positive(t, cfg.Analysis.Cpus)
}

func TestRead(t *testing.T) {
	src := `
[analysis]
cpus = 2
skip_small_residues = true

[outline]
mode = "ATOM_RMSD"
boundary = "relative"
size = 7
`
	cfg, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Analysis.Cpus)
	assert.True(t, cfg.Options(nil).SkipSmallResidues())
	oc, err := cfg.OutlineConfig()
	require.NoError(t, err)
	assert.Equal(t, outline.AtomRMSD, oc.Mode)
	assert.Equal(t, outline.Relative, oc.Boundary)
	assert.Equal(t, 7, oc.Size)
	assert.Equal(t, "RdPu", oc.Palette)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("[outline]\ncolour = \"red\"\n"))
	assert.ErrorContains(t, err, "outline.colour")
	_, err = Read(strings.NewReader("[outline\n"))
	assert.Error(t, err)
	cfg, err := Read(strings.NewReader("[outline]\nmode = \"chain\"\n"))
	require.NoError(t, err)
	_, err = cfg.OutlineConfig()
	assert.Error(t, err)
}

func TestWriteLoad(t *testing.T) {
	cfg := Default()
	cfg.Outline.Palette = "Set1"
	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	path := filepath.Join(t.TempDir(), "gofluct.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
