package chord

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const drumChannel = 9

// Sounding is the set of notes held down at one point of a MIDI file.
type Sounding struct {
	Tick  int64
	Notes []uint8
}

type reducedEvent struct {
	tick      int64
	isNoteOff bool
	note      uint8
}

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

func snapshot(pressed map[uint8]bool) []uint8 {
	notes := make([]uint8, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// GetChords walks every non-drum note in s and returns what is sounding after
// each tick that changes it, ordered by tick. Ticks where nothing sounds are
// left out.
func GetChords(s *smf.SMF) []Sounding {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				if channel != drumChannel {
					reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key})
				}
			case msg.GetNoteEnd(&channel, &key):
				if channel != drumChannel {
					reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key, isNoteOff: true})
				}
			}
		}
	}

	// earlier ticks first, and note offs before note ons on the same tick
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].tick != reducedEvents[j].tick {
			return reducedEvents[i].tick < reducedEvents[j].tick
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	tickToNotes := make(map[int64][]uint8)
	var ticks []int64
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		if _, seen := tickToNotes[evt.tick]; !seen {
			ticks = append(ticks, evt.tick)
		}
		tickToNotes[evt.tick] = snapshot(pressed)
	}

	var res []Sounding
	for _, tick := range ticks {
		if notes := tickToNotes[tick]; len(notes) > 0 {
			res = append(res, Sounding{Tick: tick, Notes: notes})
		}
	}
	return res
}
