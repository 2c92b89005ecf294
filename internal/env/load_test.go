package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSetsVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nMODELVIEWER_FOV=75\nMODELVIEWER_TITLE=\"My Viewer\"\n\nBROKENLINE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("MODELVIEWER_FOV", "")
	t.Setenv("MODELVIEWER_TITLE", "")
	require.NoError(t, Load(path))

	assert.Equal(t, "75", os.Getenv("MODELVIEWER_FOV"))
	assert.Equal(t, "My Viewer", os.Getenv("MODELVIEWER_TITLE"))
}

func TestLoadMissingFileIsFine(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}

func TestFloat32Fallbacks(t *testing.T) {
	t.Setenv("MODELVIEWER_FOV", "72.5")
	assert.InDelta(t, 72.5, Float32("MODELVIEWER_FOV", 60), 1e-6)

	t.Setenv("MODELVIEWER_FOV", "not-a-number")
	assert.InDelta(t, 60, Float32("MODELVIEWER_FOV", 60), 1e-6)

	assert.InDelta(t, 60, Float32("MODELVIEWER_UNSET_KEY", 60), 1e-6)
}

func TestStringFallback(t *testing.T) {
	t.Setenv("MODELVIEWER_TITLE", "  ")
	assert.Equal(t, "fallback", String("MODELVIEWER_TITLE", "fallback"))

	t.Setenv("MODELVIEWER_TITLE", "Viewer")
	assert.Equal(t, "Viewer", String("MODELVIEWER_TITLE", "fallback"))
}
