package generator

import (
	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
)

// bass window, centred a little above C2
const (
	bassLow  = 36
	bassHigh = 52

	leadingToneChance = 0.6
)

func bassTrack(p model.Params, harmony []model.Chord, r rng.Source) []model.NoteEvent {
	res := []model.NoteEvent{}
	for bar, c := range harmony {
		rootPC := c[0] % 12
		root := chord.NearestPitchClassInRange(rootPC, bassLow, bassHigh)

		for beat := 0; beat < 4; beat++ {
			if r.Next() >= p.Densities.Bass {
				continue
			}
			note := root
			if beat == 3 && r.Next() < leadingToneChance {
				note = chord.NearestPitchClassInRange((rootPC+11)%12, bassLow, bassHigh)
			}
			res = append(res, event(bar*steps+beat*4, note, 4, 0.85))
		}
	}
	return res
}
