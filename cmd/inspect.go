package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/midi"
	"github.com/jsphweid/seedsong/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects an exported MIDI file",
	Long:  `Prints tempo, instruments, note counts and the chords found in a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	decoded, err := midi.DecodeSong(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "tempo: %v bpm\n", decoded.BPM)
	for _, name := range model.TrackNames {
		events, ok := decoded.Tracks[name]
		if !ok {
			continue
		}
		if program, ok := decoded.Instruments[name]; ok {
			fmt.Fprintf(w, "%-10v %4d events, program %v\n", name, len(events), program)
		} else {
			fmt.Fprintf(w, "%-10v %4d events\n", name, len(events))
		}
	}

	ticksPerBar := int64(4 * s.TimeFormat.(smf.MetricTicks).Ticks4th())
	for _, sounding := range chord.GetChords(s) {
		bar := sounding.Tick / ticksPerBar
		fmt.Fprintf(w, "bar %3d tick %6d: %v\n", bar, sounding.Tick, describe(sounding.Notes))
	}
	return nil
}

func describe(notes []uint8) string {
	if len(notes) == 3 {
		return chord.Name(model.Chord{int(notes[0]), int(notes[1]), int(notes[2])})
	}
	return chord.CreateChordKey(notes)
}
