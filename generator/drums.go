package generator

import (
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
)

const (
	kickPitch  = 36
	snarePitch = 38
	hatPitch   = 42

	offbeatChance = 0.6
	hatDensity    = 0.9
)

var (
	fourOnTheFloor = []int{0, 4, 8, 12}
	kickBase       = []int{0, 8}
	kickOffbeats   = [2]int{6, 14}
	backbeat       = []int{4, 12}
)

// kickCandidates decides the kick steps of one bar. Both offbeat draws are
// taken even for house, which ignores them, so that the stream stays aligned
// across styles.
func kickCandidates(style model.Style, r rng.Source) []int {
	var offbeats []int
	for _, st := range kickOffbeats {
		if r.Next() < offbeatChance {
			offbeats = append(offbeats, st)
		}
	}
	if style == model.StyleHouse {
		return fourOnTheFloor
	}
	return append(append([]int{}, kickBase...), offbeats...)
}

func drumTracks(p model.Params, r rng.Source) (kick, snare, hat []model.NoteEvent) {
	kick, snare, hat = []model.NoteEvent{}, []model.NoteEvent{}, []model.NoteEvent{}
	density := p.Densities.Drums

	for bar := 0; bar < p.Bars; bar++ {
		base := bar * steps

		for _, st := range kickCandidates(p.Style, r) {
			if r.Next() < density {
				kick = append(kick, event(base+st, kickPitch, 2, 0.9))
			}
		}

		for _, st := range backbeat {
			if r.Next() < density {
				snare = append(snare, event(base+st, snarePitch, 2, 0.9))
			}
		}

		for st := 0; st < steps; st += 2 {
			if r.Next() < density*hatDensity {
				vel := 0.5 + (r.Next()*0.2 - 0.1)
				hat = append(hat, event(base+st, hatPitch, 1, vel))
			}
		}
	}
	return kick, snare, hat
}
