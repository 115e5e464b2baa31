package model

// Chord is a triad voiced as ascending MIDI pitches: root, third, fifth.
type Chord = [3]int

type Quality string

const (
	Major      Quality = "maj"
	Minor      Quality = "min"
	Diminished Quality = "dim"
)
