package model

// InstrumentMap assigns a General MIDI program number to each melodic track.
type InstrumentMap map[TrackName]uint8

func DefaultInstruments() InstrumentMap {
	return InstrumentMap{
		Bass:     33, // electric bass (finger)
		Chords:   0,  // acoustic grand piano
		Arpeggio: 81, // lead 2 (sawtooth)
		Lead:     80, // lead 1 (square)
	}
}
