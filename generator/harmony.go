package generator

import (
	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/model"
)

const middleC = 60

// ExpandHarmony resolves one chord per bar, cycling through the progression.
func ExpandHarmony(p model.Params, tonicPC int) []model.Chord {
	res := make([]model.Chord, p.Bars)
	for bar := range res {
		symbol := p.Progression[bar%len(p.Progression)]
		res[bar] = chord.FromDegreeSymbol(symbol, tonicPC, p.Mode, middleC)
	}
	return res
}
