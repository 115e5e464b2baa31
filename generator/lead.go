package generator

import (
	"math"

	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
	"github.com/jsphweid/seedsong/util"
)

const (
	leadLow       = 60
	leadHigh      = 84
	leadCeiling   = 90
	chordToneBias = 0.65
	maxLift       = 12
)

// ContourPeakBar is the bar after which the melody starts climbing.
func ContourPeakBar(bars int) int {
	peak := int(math.Round(float64(bars) * 0.7))
	return util.Clamp(peak, 1, bars-2)
}

func chordTones(c model.Chord) []int {
	return []int{c[0], c[1], c[2], c[0] + 12, c[1] + 12, c[2] + 12}
}

func pick(pool []int, r rng.Source) int {
	if len(pool) == 0 {
		panic("generator: empty note pool")
	}
	return pool[int(r.Next()*float64(len(pool)))]
}

func leadTrack(p model.Params, tonicPC int, harmony []model.Chord, r rng.Source) []model.NoteEvent {
	res := []model.NoteEvent{}
	scale := chord.ScalePitches(tonicPC, p.Mode, leadLow, leadHigh)
	peak := ContourPeakBar(p.Bars)

	for bar, c := range harmony {
		lift := util.Min(maxLift, util.Max(0, bar-peak)*2)
		tones := chordTones(c)

		for st := 0; st < steps; st += 2 {
			if r.Next() >= p.Densities.Lead {
				continue
			}
			pool := scale
			if r.Next() < chordToneBias {
				pool = tones
			}
			pitch := util.Min(leadCeiling, pick(pool, r)+lift)
			vel := 0.6 + (r.Next()*0.1 - 0.05)
			res = append(res, event(bar*steps+st, pitch, 2, vel))
		}
	}
	return res
}
