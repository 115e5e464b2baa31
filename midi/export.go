package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/jsphweid/seedsong/constants"
	"github.com/jsphweid/seedsong/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type trackLayout struct {
	title   string
	channel uint8
}

var layouts = map[model.TrackName]trackLayout{
	model.KickDrum:  {"Kick", constants.DrumChannel},
	model.SnareDrum: {"Snare", constants.DrumChannel},
	model.HiHat:     {"Hat", constants.DrumChannel},
	model.Bass:      {"Bass", 1},
	model.Chords:    {"Chords", 2},
	model.Arpeggio:  {"Arp", 3},
	model.Lead:      {"Lead", 4},
}

func trackByTitle(title string) (model.TrackName, bool) {
	for name, l := range layouts {
		if l.title == title {
			return name, true
		}
	}
	return "", false
}

type timedMessage struct {
	tick  uint32
	isOff bool
	msg   gomidi.Message
}

func sortEvents(events []model.NoteEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Step != events[j].Step {
			return events[i].Step < events[j].Step
		}
		return events[i].Pitch < events[j].Pitch
	})
}

func velocityByte(v float64) uint8 {
	b := math.Round(v * 127)
	if b < 1 {
		return 1
	}
	if b > 127 {
		return 127
	}
	return uint8(b)
}

func pitchByte(p int) uint8 {
	if p < 0 {
		return 0
	}
	if p > 127 {
		return 127
	}
	return uint8(p)
}

func buildTrack(name model.TrackName, events []model.NoteEvent, program *uint8, perStep uint32) smf.Track {
	layout := layouts[name]
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(layout.title))
	if program != nil {
		tr.Add(0, gomidi.ProgramChange(layout.channel, *program))
	}

	timed := make([]timedMessage, 0, len(events)*2)
	for _, ev := range events {
		key := pitchByte(ev.Pitch)
		start := uint32(ev.Step) * perStep
		end := uint32(ev.Step+ev.Duration) * perStep
		timed = append(timed,
			timedMessage{tick: start, msg: gomidi.NoteOn(layout.channel, key, velocityByte(ev.Velocity))},
			timedMessage{tick: end, isOff: true, msg: gomidi.NoteOff(layout.channel, key)},
		)
	}
	// a note ending on a tick releases before the next one on that tick starts
	sort.SliceStable(timed, func(i, j int) bool {
		if timed[i].tick != timed[j].tick {
			return timed[i].tick < timed[j].tick
		}
		return timed[i].isOff && !timed[j].isOff
	})

	var last uint32
	for _, tm := range timed {
		tr.Add(tm.tick-last, tm.msg)
		last = tm.tick
	}
	tr.Close(0)
	return tr
}

// EncodeSong builds a format 1 Standard MIDI File: a conductor track with
// tempo and meter, then one track per TrackName in canonical order. One step
// is a sixteenth note. Melodic tracks found in instruments get a program
// change; drums always play on channel 10.
func EncodeSong(song model.Song, instruments model.InstrumentMap) (*smf.SMF, error) {
	s := smf.New()
	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s.TimeFormat = ticks
	perStep := ticks.Ticks16th()

	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(4, 4))
	conductor.Add(0, smf.MetaTempo(float64(song.Params.BPM)))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, fmt.Errorf("could not add conductor track: %w", err)
	}

	for _, name := range model.TrackNames {
		var program *uint8
		if p, ok := instruments[name]; ok && !name.IsDrum() {
			program = &p
		}
		if err := s.Add(buildTrack(name, song.Tracks[name], program, perStep)); err != nil {
			return nil, fmt.Errorf("could not add %s track: %w", name, err)
		}
	}
	return s, nil
}

func WriteSong(w io.Writer, song model.Song, instruments model.InstrumentMap) error {
	s, err := EncodeSong(song, instruments)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

func SongBytes(song model.Song, instruments model.InstrumentMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSong(&buf, song, instruments); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
