package generator

import (
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
)

var arpPattern = [steps]int{0, 1, 2, 1, 0, 2, 3, 2, 0, 1, 2, 3, 2, 1, 0, 1}

func arpeggioTrack(p model.Params, harmony []model.Chord, r rng.Source) []model.NoteEvent {
	res := []model.NoteEvent{}
	for bar, c := range harmony {
		if r.Next() >= p.Densities.Arp {
			continue
		}
		pool := [4]int{c[0], c[1], c[2], c[1] + 12}
		for i, idx := range arpPattern {
			res = append(res, event(bar*steps+i, pool[idx%len(pool)], 1, 0.55))
		}
	}
	return res
}
