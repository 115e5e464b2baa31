package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/seedsong/model"
)

var pitchClasses = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4, "Fb": 4, "E#": 5,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11, "Cb": 11, "B#": 0,
}

var pitchClassNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

var scaleOffsets = map[model.Mode][7]int{
	model.ModeMajor: {0, 2, 4, 5, 7, 9, 11},
	model.ModeMinor: {0, 2, 3, 5, 7, 8, 10},
}

var triadQualities = map[model.Mode][7]model.Quality{
	model.ModeMajor: {model.Major, model.Minor, model.Minor, model.Major, model.Major, model.Minor, model.Diminished},
	model.ModeMinor: {model.Minor, model.Diminished, model.Major, model.Minor, model.Minor, model.Major, model.Major},
}

var triadIntervals = map[model.Quality][3]int{
	model.Major:      {0, 4, 7},
	model.Minor:      {0, 3, 7},
	model.Diminished: {0, 3, 6},
}

var degreeNumerals = map[string]int{"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6}

// PitchClass looks up a note name such as "F#" or "Db".
func PitchClass(name string) (int, bool) {
	pc, ok := pitchClasses[name]
	return pc, ok
}

// TonicPitchClass is PitchClass with unknown names falling back to C.
func TonicPitchClass(name string) int {
	pc, _ := PitchClass(name)
	return pc
}

func NameForPitchClass(pc int) string {
	return pitchClassNames[mod12(pc)]
}

// ScaleOffsets returns semitone offsets from the tonic. Anything that is not
// minor is treated as major.
func ScaleOffsets(mode model.Mode) [7]int {
	if mode == model.ModeMinor {
		return scaleOffsets[model.ModeMinor]
	}
	return scaleOffsets[model.ModeMajor]
}

func Quality(mode model.Mode, degree int) model.Quality {
	if mode == model.ModeMinor {
		return triadQualities[model.ModeMinor][degree]
	}
	return triadQualities[model.ModeMajor][degree]
}

func Intervals(q model.Quality) [3]int {
	return triadIntervals[q]
}

// DegreeIndex turns a roman numeral into a 0-based scale degree. Only the
// letters I and V count, in either case; "vi", "VI" and "bVI7" are all 5.
// Unrecognized symbols resolve to the tonic.
func DegreeIndex(symbol string) int {
	var b strings.Builder
	for _, r := range strings.ToUpper(symbol) {
		if r == 'I' || r == 'V' {
			b.WriteRune(r)
		}
	}
	if idx, ok := degreeNumerals[b.String()]; ok {
		return idx
	}
	return 0
}

// pitchAtOrAbove finds the first pitch in [base, base+11] with the given
// pitch class.
func pitchAtOrAbove(base, pc int) int {
	for i := 0; i < 12; i++ {
		if mod12(base+i) == pc {
			return base + i
		}
	}
	return base
}

func FromDegreeSymbol(symbol string, tonicPC int, mode model.Mode, registerBase int) model.Chord {
	degree := DegreeIndex(symbol)
	rootPC := mod12(tonicPC + ScaleOffsets(mode)[degree])
	root := pitchAtOrAbove(registerBase, rootPC)

	var c model.Chord
	for i, semi := range Intervals(Quality(mode, degree)) {
		c[i] = root + semi
	}
	return c
}

// ScalePitches lists every pitch in [low, high] that belongs to the mode.
func ScalePitches(tonicPC int, mode model.Mode, low, high int) []int {
	var inScale [12]bool
	for _, off := range ScaleOffsets(mode) {
		inScale[mod12(tonicPC+off)] = true
	}

	var res []int
	for p := low; p <= high; p++ {
		if inScale[mod12(p)] {
			res = append(res, p)
		}
	}
	return res
}

// NearestPitchClassInRange picks the pitch of class pc closest to the middle
// of [low, high]. On a tie the lower pitch wins. If the range holds no such
// pitch, low is returned.
func NearestPitchClassInRange(pc, low, high int) int {
	best := low
	bestDiff := -1.0
	mid := float64(low+high) / 2
	for p := low; p <= high; p++ {
		if mod12(p) != mod12(pc) {
			continue
		}
		diff := float64(p) - mid
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = p, diff
		}
	}
	return best
}

// Name renders a chord as e.g. "C", "Am" or "Bdim", inferring the quality
// from its intervals.
func Name(c model.Chord) string {
	root := NameForPitchClass(c[0])
	third, fifth := c[1]-c[0], c[2]-c[0]
	switch {
	case third == 4 && fifth == 7:
		return root
	case third == 3 && fifth == 7:
		return root + "m"
	case third == 3 && fifth == 6:
		return root + "dim"
	}
	return fmt.Sprintf("%s(%d,%d)", root, third, fifth)
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
