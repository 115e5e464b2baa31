// Package generator turns Params and a seed into a Song.
//
// Every probabilistic decision takes exactly one draw from a single seeded
// stream, and the tracks are generated in a fixed order: harmony, chords,
// drums, bass, arpeggio, lead. Adding, removing or reordering a draw changes
// the song every existing seed maps to.
package generator

import (
	"math"

	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
)

const steps = model.StepsPerBar

// Generate composes a song. p must already be valid (see model.Params.Validate).
func Generate(p model.Params, seed uint32) model.Song {
	return GenerateFrom(p, rng.New(seed))
}

// GenerateFrom is Generate with a caller-supplied stream.
func GenerateFrom(p model.Params, r rng.Source) model.Song {
	tonic := chord.TonicPitchClass(p.Tonic)
	harmony := ExpandHarmony(p, tonic)

	tracks := make(model.Tracks, len(model.TrackNames))
	for _, name := range model.TrackNames {
		tracks[name] = []model.NoteEvent{}
	}

	tracks[model.Chords] = chordTrack(p, harmony, r)
	tracks[model.KickDrum], tracks[model.SnareDrum], tracks[model.HiHat] = drumTracks(p, r)
	tracks[model.Bass] = bassTrack(p, harmony, r)
	tracks[model.Arpeggio] = arpeggioTrack(p, harmony, r)
	tracks[model.Lead] = leadTrack(p, tonic, harmony, r)

	params := p
	params.Progression = append([]string(nil), p.Progression...)

	return model.Song{
		Params:   params,
		Tracks:   tracks,
		Humanize: HumanizeHint(p.Humanize),
	}
}

// HumanizeHint is the timing jitter bound handed to players: 2*humanize,
// truncated to two decimals.
func HumanizeHint(humanize float64) float64 {
	return math.Floor(2*humanize*100) / 100
}

func event(step, pitch, duration int, velocity float64) model.NoteEvent {
	return model.NoteEvent{Step: step, Pitch: pitch, Duration: duration, Velocity: velocity}
}
