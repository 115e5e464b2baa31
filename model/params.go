package model

import (
	"errors"
	"fmt"

	"github.com/jsphweid/seedsong/constants"
)

type Mode string

const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

type Style string

const (
	StylePop       Style = "pop"
	StyleHouse     Style = "house"
	StyleLofi      Style = "lofi"
	StyleCinematic Style = "cinematic"
)

type Densities struct {
	Drums  float64 `json:"drums" yaml:"drums"`
	Bass   float64 `json:"bass" yaml:"bass"`
	Chords float64 `json:"chords" yaml:"chords"`
	Arp    float64 `json:"arp" yaml:"arp"`
	Lead   float64 `json:"lead" yaml:"lead"`
}

// Params is the full composition request. The generator reads it but never
// writes to it.
type Params struct {
	BPM         int       `json:"bpm" yaml:"bpm"`
	Tonic       string    `json:"tonic" yaml:"tonic"`
	Mode        Mode      `json:"mode" yaml:"mode"`
	Progression []string  `json:"progression" yaml:"progression"`
	Bars        int       `json:"bars" yaml:"bars"`
	Style       Style     `json:"style" yaml:"style"`
	Humanize    float64   `json:"humanize" yaml:"humanize"`
	Densities   Densities `json:"densities" yaml:"densities"`
}

func DefaultParams() Params {
	return Params{
		BPM:         80,
		Tonic:       "C",
		Mode:        ModeMajor,
		Progression: []string{"I", "V", "vi", "IV"},
		Bars:        8,
		Style:       StylePop,
		Humanize:    0.15,
		Densities: Densities{
			Drums:  0.9,
			Bass:   1,
			Chords: 1,
			Arp:    0.7,
			Lead:   0.9,
		},
	}
}

var (
	ErrEmptyProgression = errors.New("progression must contain at least one symbol")
	ErrInvalidBars      = fmt.Errorf("bars must be between 1 and %d", constants.MaxBars)
	ErrInvalidBPM       = fmt.Errorf("bpm must be between 1 and %d", constants.MaxBPM)
	ErrInvalidMode      = errors.New("unknown mode")
	ErrInvalidStyle     = errors.New("unknown style")
	ErrOutOfRange       = errors.New("value out of range [0,1]")
)

// Validate is meant for callers building Params from user input. The
// generator assumes it has already passed.
func (p Params) Validate() error {
	if len(p.Progression) == 0 {
		return ErrEmptyProgression
	}
	if p.Bars < 1 || p.Bars > constants.MaxBars {
		return fmt.Errorf("%w: got %d", ErrInvalidBars, p.Bars)
	}
	if p.BPM < 1 || p.BPM > constants.MaxBPM {
		return fmt.Errorf("%w: got %d", ErrInvalidBPM, p.BPM)
	}
	switch p.Mode {
	case ModeMajor, ModeMinor:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, p.Mode)
	}
	switch p.Style {
	case StylePop, StyleHouse, StyleLofi, StyleCinematic:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStyle, p.Style)
	}

	unit := []struct {
		name  string
		value float64
	}{
		{"humanize", p.Humanize},
		{"densities.drums", p.Densities.Drums},
		{"densities.bass", p.Densities.Bass},
		{"densities.chords", p.Densities.Chords},
		{"densities.arp", p.Densities.Arp},
		{"densities.lead", p.Densities.Lead},
	}
	for _, u := range unit {
		if u.value < 0 || u.value > 1 {
			return fmt.Errorf("%w: %s=%v", ErrOutOfRange, u.name, u.value)
		}
	}
	return nil
}
