package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/seedsong/chord"
	"github.com/jsphweid/seedsong/file"
	"github.com/jsphweid/seedsong/generator"
	"github.com/jsphweid/seedsong/midi"
	"github.com/jsphweid/seedsong/model"
	"github.com/spf13/cobra"
)

var (
	generateFlags paramsFlags
	generateOut   string
)

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write the song as a MIDI file")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a song",
	Long:  `Generates a song and prints a summary. Use -o to export it as a MIDI file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := generateFlags.params(cmd)
		if err != nil {
			return err
		}
		seed := generateFlags.seedFor(cmd)
		song := generator.Generate(p, seed)

		printSummary(cmd.OutOrStdout(), song, seed)

		if generateOut != "" {
			return exportFile(generateOut, song, model.DefaultInstruments())
		}
		return nil
	},
}

func printSummary(w io.Writer, song model.Song, seed uint32) {
	p := song.Params
	fmt.Fprintf(w, "seed: %v\n", seed)
	fmt.Fprintf(w, "key: %v %v, %v bpm, %v bars, style %v\n", p.Tonic, p.Mode, p.BPM, p.Bars, p.Style)

	var names []string
	for _, c := range generator.ExpandHarmony(p, chord.TonicPitchClass(p.Tonic)) {
		names = append(names, chord.Name(c))
	}
	fmt.Fprintf(w, "harmony: %v\n", strings.Join(names, " | "))

	for _, name := range model.TrackNames {
		fmt.Fprintf(w, "%-10v %4d events\n", name, len(song.Tracks[name]))
	}
	fmt.Fprintf(w, "humanize: %v\n", song.Humanize)
}

func exportFile(path string, song model.Song, instruments model.InstrumentMap) error {
	if err := file.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()

	if err := midi.WriteSong(f, song, instruments); err != nil {
		return err
	}
	slog.Info("wrote midi", "path", path, "events", song.EventCount())
	return nil
}
