package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/seedsong/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParamsYAMLKeepsDefaults(t *testing.T) {
	path := write(t, "song.yaml", `
tonic: A
mode: minor
progression: [i, iv, v, i]
densities:
  drums: 0.5
`)
	p, err := LoadParams(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("A", p.Tonic)
	assert.Equal(model.ModeMinor, p.Mode)
	assert.Equal([]string{"i", "iv", "v", "i"}, p.Progression)
	assert.Equal(0.5, p.Densities.Drums)
	// untouched fields come from the defaults
	assert.Equal(80, p.BPM)
	assert.Equal(8, p.Bars)
}

func TestLoadParamsJSON(t *testing.T) {
	path := write(t, "song.json", `{"bpm": 124, "style": "house", "bars": 16}`)
	p, err := LoadParams(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(124, p.BPM)
	assert.Equal(model.StyleHouse, p.Style)
	assert.Equal(16, p.Bars)
	assert.Equal("C", p.Tonic)
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadParamsBadJSON(t *testing.T) {
	path := write(t, "song.json", `{"bpm": "fast"`)
	_, err := LoadParams(path)
	assert.Error(t, err)
}
