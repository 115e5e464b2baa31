package model

// StepsPerBar is the number of sixteenth-note steps in one 4/4 bar.
const StepsPerBar = 16

type NoteEvent struct {
	Step     int     `json:"step"`
	Pitch    int     `json:"pitch"`
	Duration int     `json:"duration"`
	Velocity float64 `json:"velocity"`
}

type TrackName string

const (
	KickDrum  TrackName = "kickDrum"
	SnareDrum TrackName = "snareDrum"
	HiHat     TrackName = "hiHat"
	Bass      TrackName = "bass"
	Chords    TrackName = "chords"
	Arpeggio  TrackName = "arpeggio"
	Lead      TrackName = "lead"
)

// TrackNames lists every track in canonical order.
var TrackNames = []TrackName{KickDrum, SnareDrum, HiHat, Bass, Chords, Arpeggio, Lead}

// MelodicTracks are the tracks that take an instrument assignment on export.
var MelodicTracks = []TrackName{Bass, Chords, Arpeggio, Lead}

func (t TrackName) IsDrum() bool {
	return t == KickDrum || t == SnareDrum || t == HiHat
}

type Tracks = map[TrackName][]NoteEvent

// Song is a finished score. Consumers must treat it as read-only.
type Song struct {
	Params Params `json:"params"`
	Tracks Tracks `json:"tracks"`

	// Upper bound for per-trigger timing jitter applied by a player, in seconds.
	Humanize float64 `json:"humanize"`
}

// Steps is the total length of the song in steps.
func (s Song) Steps() int {
	return s.Params.Bars * StepsPerBar
}

func (s Song) EventCount() int {
	var n int
	for _, events := range s.Tracks {
		n += len(events)
	}
	return n
}
