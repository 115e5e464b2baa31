package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/seedsong/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNotMetric = errors.New("midi file does not use metric ticks")

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

// Decoded is what can be recovered from an exported file.
type Decoded struct {
	BPM         float64
	Tracks      model.Tracks
	Instruments model.InstrumentMap
}

type held struct {
	tick     int64
	velocity uint8
}

// DecodeSong maps the tracks of s back to model tracks by their track name.
// Tracks with unknown names are skipped.
func DecodeSong(s *smf.SMF) (Decoded, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return Decoded{}, ErrNotMetric
	}
	perStep := int64(ticks.Ticks16th())

	res := Decoded{
		Tracks:      make(model.Tracks),
		Instruments: make(model.InstrumentMap),
	}

	for _, track := range s.Tracks {
		var name model.TrackName
		var known bool
		var absTicks int64
		events := []model.NoteEvent{}
		open := make(map[uint8][]held)

		for _, ev := range track {
			absTicks += int64(ev.Delta)

			var text string
			var bpm float64
			if ev.Message.GetMetaTrackName(&text) {
				name, known = trackByTitle(text)
				continue
			}
			if ev.Message.GetMetaTempo(&bpm) {
				res.BPM = bpm
				continue
			}

			msg := gomidi.Message(ev.Message)
			var channel, key, velocity, program uint8
			switch {
			case msg.GetProgramChange(&channel, &program):
				if known {
					res.Instruments[name] = program
				}
			case msg.GetNoteStart(&channel, &key, &velocity):
				open[key] = append(open[key], held{tick: absTicks, velocity: velocity})
			case msg.GetNoteEnd(&channel, &key):
				starts := open[key]
				if len(starts) == 0 {
					continue
				}
				start := starts[0]
				open[key] = starts[1:]
				events = append(events, model.NoteEvent{
					Step:     int(start.tick / perStep),
					Pitch:    int(key),
					Duration: int((absTicks - start.tick) / perStep),
					Velocity: float64(start.velocity) / 127,
				})
			}
		}

		if known {
			sortEvents(events)
			res.Tracks[name] = events
		}
	}

	return res, nil
}
