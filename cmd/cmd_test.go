package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/seedsong/generator"
	"github.com/jsphweid/seedsong/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullParams() model.Params {
	p := model.DefaultParams()
	p.Bars = 4
	p.Densities = model.Densities{Drums: 1, Bass: 1, Chords: 1, Arp: 1, Lead: 1}
	return p
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, generator.Generate(fullParams(), 42), 42)

	out := buf.String()
	assert := assert.New(t)
	assert.Contains(out, "seed: 42")
	assert.Contains(out, "harmony: C | G | Am | F")
	assert.Contains(out, "chords       12 events")
	assert.Contains(out, "humanize: 0.3")
}

func TestExportThenInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "song.mid")
	require.NoError(t, exportFile(path, generator.Generate(fullParams(), 42), model.DefaultInstruments()))

	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, path))

	out := buf.String()
	assert := assert.New(t)
	assert.Contains(out, "tempo: 80 bpm")
	assert.Contains(out, "chords       12 events, program 0")
	assert.Contains(out, "kickDrum")
	assert.Contains(out, "bar   0 tick      0:")
}

func TestInspectMissingFile(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, inspect(&buf, filepath.Join(t.TempDir(), "missing.mid")))
}

func TestSampleAtFullAndZeroDensity(t *testing.T) {
	full, err := sample(fullParams(), 0, 64)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(64, full.samples)
	for _, name := range []model.TrackName{model.Chords, model.SnareDrum, model.Bass, model.Arpeggio, model.Lead} {
		tr := full.tracks[name]
		assert.Equal(float64(tr.capacity), tr.mean, name)
		assert.Equal(tr.capacity, tr.min, name)
		assert.Equal(tr.capacity, tr.max, name)
	}

	empty := fullParams()
	empty.Densities = model.Densities{}
	zero, err := sample(empty, 0, 64)
	require.NoError(t, err)
	for _, name := range model.TrackNames {
		assert.Zero(zero.tracks[name].max, name)
	}

	var buf bytes.Buffer
	printReport(&buf, full)
	assert.Contains(buf.String(), "samples: 64")
	assert.Contains(buf.String(), "fill 100.0%")
}

func TestBatchWritesOneFilePerSeed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, batch(fullParams(), 10, 3, dir))

	for _, name := range []string{"seed-10.mid", "seed-11.mid", "seed-12.mid"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRejectsNonPositiveCounts(t *testing.T) {
	_, err := sample(model.DefaultParams(), 1, -1)
	assert.ErrorIs(t, err, errInvalidCount)

	dir := t.TempDir()
	assert.ErrorIs(t, batch(model.DefaultParams(), 1, 0, dir), errInvalidCount)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDensityFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("densities:\n  drums: 0.5\n  bass: 0.5\n  chords: 0.5\n  arp: 0.5\n  lead: 0.5\n"), 0o644))

	var f paramsFlags
	c := &cobra.Command{Use: "test"}
	f.register(c)
	require.NoError(t, c.ParseFlags([]string{"-f", path, "--drums", "0", "--arp", "1", "--lead", "0.25"}))

	p, err := f.params(c)
	require.NoError(t, err)
	assert.Equal(t, model.Densities{Drums: 0, Bass: 0.5, Chords: 0.5, Arp: 1, Lead: 0.25}, p.Densities)

	require.NoError(t, c.ParseFlags([]string{"--chords", "1.5"}))
	_, err = f.params(c)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func TestParamsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tonic: D\nbars: 12\n"), 0o644))

	var f paramsFlags
	c := &cobra.Command{Use: "test"}
	f.register(c)
	require.NoError(t, c.ParseFlags([]string{"-f", path, "--bars", "3", "--progression", "i,iv", "--mode", "minor"}))

	p, err := f.params(c)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("D", p.Tonic)
	assert.Equal(3, p.Bars)
	assert.Equal(model.ModeMinor, p.Mode)
	assert.Equal([]string{"i", "iv"}, p.Progression)

	require.NoError(t, c.ParseFlags([]string{"--bars", "0"}))
	_, err = f.params(c)
	assert.ErrorIs(err, model.ErrInvalidBars)
}
