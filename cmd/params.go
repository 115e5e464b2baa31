package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jsphweid/seedsong/file"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
	"github.com/spf13/cobra"
)

// paramsFlags are shared by every command that composes songs. Flags that
// were set explicitly win over the params file, which wins over defaults.
type paramsFlags struct {
	path        string
	seed        uint32
	bpm         int
	bars        int
	tonic       string
	mode        string
	style       string
	progression []string
	humanize    float64
	densities   model.Densities
}

func (f *paramsFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.path, "file", "f", "", "params file (YAML or JSON)")
	flags.Uint32Var(&f.seed, "seed", 0, "random seed (random if not set)")
	flags.IntVar(&f.bpm, "bpm", 0, "tempo in beats per minute")
	flags.IntVar(&f.bars, "bars", 0, "number of bars")
	flags.StringVar(&f.tonic, "tonic", "", "tonic note name, e.g. C, F#, Bb")
	flags.StringVar(&f.mode, "mode", "", "major or minor")
	flags.StringVar(&f.style, "style", "", "pop, house, lofi or cinematic")
	flags.StringSliceVar(&f.progression, "progression", nil, "comma separated roman numerals, e.g. I,V,vi,IV")
	flags.Float64Var(&f.humanize, "humanize", 0, "playback timing jitter, 0..1")
	flags.Float64Var(&f.densities.Drums, "drums", 0, "drum density, 0..1")
	flags.Float64Var(&f.densities.Bass, "bass", 0, "bass density, 0..1")
	flags.Float64Var(&f.densities.Chords, "chords", 0, "chord density, 0..1")
	flags.Float64Var(&f.densities.Arp, "arp", 0, "arpeggio density, 0..1")
	flags.Float64Var(&f.densities.Lead, "lead", 0, "lead density, 0..1")
}

func (f *paramsFlags) params(cmd *cobra.Command) (model.Params, error) {
	p := model.DefaultParams()
	if f.path != "" {
		loaded, err := file.LoadParams(f.path)
		if err != nil {
			return model.Params{}, err
		}
		p = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bpm") {
		p.BPM = f.bpm
	}
	if flags.Changed("bars") {
		p.Bars = f.bars
	}
	if flags.Changed("tonic") {
		p.Tonic = f.tonic
	}
	if flags.Changed("mode") {
		p.Mode = model.Mode(f.mode)
	}
	if flags.Changed("style") {
		p.Style = model.Style(f.style)
	}
	if flags.Changed("progression") {
		p.Progression = f.progression
	}
	if flags.Changed("humanize") {
		p.Humanize = f.humanize
	}
	if flags.Changed("drums") {
		p.Densities.Drums = f.densities.Drums
	}
	if flags.Changed("bass") {
		p.Densities.Bass = f.densities.Bass
	}
	if flags.Changed("chords") {
		p.Densities.Chords = f.densities.Chords
	}
	if flags.Changed("arp") {
		p.Densities.Arp = f.densities.Arp
	}
	if flags.Changed("lead") {
		p.Densities.Lead = f.densities.Lead
	}

	if err := p.Validate(); err != nil {
		return model.Params{}, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}

// seedFor returns the --seed value, or a fresh one that gets logged so the
// run can be reproduced.
func (f *paramsFlags) seedFor(cmd *cobra.Command) uint32 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	seed := rng.NewSeed()
	slog.Info("no seed given, picked one", "seed", seed)
	return seed
}
