package model

import (
	"testing"

	"github.com/jsphweid/seedsong/constants"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsAreValid(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Params)
		want   error
	}{
		{"empty progression", func(p *Params) { p.Progression = nil }, ErrEmptyProgression},
		{"zero bars", func(p *Params) { p.Bars = 0 }, ErrInvalidBars},
		{"too many bars", func(p *Params) { p.Bars = 1 << 30 }, ErrInvalidBars},
		{"negative bpm", func(p *Params) { p.BPM = -1 }, ErrInvalidBPM},
		{"bpm too fast", func(p *Params) { p.BPM = 10000 }, ErrInvalidBPM},
		{"dorian", func(p *Params) { p.Mode = "dorian" }, ErrInvalidMode},
		{"polka", func(p *Params) { p.Style = "polka" }, ErrInvalidStyle},
		{"humanize above 1", func(p *Params) { p.Humanize = 1.5 }, ErrOutOfRange},
		{"negative density", func(p *Params) { p.Densities.Lead = -0.1 }, ErrOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := DefaultParams()
			c.mutate(&p)
			assert.ErrorIs(t, p.Validate(), c.want)
		})
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	p := DefaultParams()
	p.Bars = constants.MaxBars
	p.BPM = constants.MaxBPM
	assert.NoError(t, p.Validate())

	p.Bars = constants.MaxBars + 1
	assert.ErrorIs(t, p.Validate(), ErrInvalidBars)
}

func TestSongHelpers(t *testing.T) {
	s := Song{
		Params: Params{Bars: 3},
		Tracks: Tracks{
			Bass: {{Step: 0, Pitch: 36, Duration: 4, Velocity: 0.85}},
			Lead: {{Step: 2, Pitch: 72, Duration: 2, Velocity: 0.6}, {Step: 4, Pitch: 74, Duration: 2, Velocity: 0.6}},
		},
	}
	assert := assert.New(t)
	assert.Equal(48, s.Steps())
	assert.Equal(3, s.EventCount())
	assert.True(HiHat.IsDrum())
	assert.False(Lead.IsDrum())
}
