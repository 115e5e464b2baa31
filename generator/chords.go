package generator

import (
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
)

var padVelocities = [3]float64{0.70, 0.65, 0.65}

func chordTrack(p model.Params, harmony []model.Chord, r rng.Source) []model.NoteEvent {
	res := []model.NoteEvent{}
	for bar, c := range harmony {
		if r.Next() >= p.Densities.Chords {
			continue
		}
		for i, pitch := range c {
			res = append(res, event(bar*steps, pitch, steps, padVelocities[i]))
		}
	}
	return res
}
