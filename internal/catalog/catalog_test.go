package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOptions = `{
  "color try-on": {
    "shade house": {
      "jet black": "#0a0a0a",
      "auburn": "#913b2a"
    },
    "glow co": {
      "honey blonde": "#d9a760"
    }
  },
  "style try-on": {
    "box braids": "style_box_braids",
    "pixie cut": "style_pixie_cut"
  }
}`

func loadSample(t *testing.T) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleOptions), 0o644))
	cat, err := Load(path)
	require.NoError(t, err)
	return cat
}

func TestOptionsSorted(t *testing.T) {
	cat := loadSample(t)

	brands, err := cat.Options("color try-on")
	require.NoError(t, err)
	assert.Equal(t, []string{"glow co", "shade house"}, brands)

	shades, err := cat.Options("color try-on", "shade house")
	require.NoError(t, err)
	assert.Equal(t, []string{"auburn", "jet black"}, shades)
}

func TestOptionsCaseInsensitive(t *testing.T) {
	cat := loadSample(t)
	_, err := cat.Options("Color Try-On", "Shade House")
	assert.NoError(t, err)
}

func TestResolveLeaf(t *testing.T) {
	cat := loadSample(t)

	hex, err := cat.Resolve("color try-on", "shade house", "jet black")
	require.NoError(t, err)
	assert.Equal(t, "#0a0a0a", hex)

	code, err := cat.Resolve("style try-on", "box braids")
	require.NoError(t, err)
	assert.Equal(t, "style_box_braids", code)
}

func TestLookupMissFailsLoud(t *testing.T) {
	cat := loadSample(t)

	_, err := cat.Options("nail art")
	assert.Error(t, err)

	_, err = cat.Resolve("color try-on", "shade house", "neon green")
	assert.Error(t, err)

	// A group where a leaf is expected, and vice versa.
	_, err = cat.Resolve("color try-on", "shade house")
	assert.Error(t, err)
	_, err = cat.Options("style try-on", "box braids")
	assert.Error(t, err)
}

func TestLoadRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
