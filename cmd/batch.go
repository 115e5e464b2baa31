package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jsphweid/seedsong/constants"
	"github.com/jsphweid/seedsong/generator"
	"github.com/jsphweid/seedsong/model"
	"github.com/spf13/cobra"
)

var (
	batchFlags paramsFlags
	batchCount int
	batchDir   string
)

func init() {
	batchFlags.register(batchCmd)
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 8, "number of songs")
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "output directory (default $OUT_PATH or ./out)")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Exports songs for consecutive seeds",
	Long:  `Exports one MIDI file per seed, starting at --seed, named seed-<n>.mid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := batchFlags.params(cmd)
		if err != nil {
			return err
		}
		dir := batchDir
		if dir == "" {
			dir = constants.GetOutDir()
		}
		return batch(p, batchFlags.seedFor(cmd), batchCount, dir)
	},
}

var errInvalidCount = errors.New("count must be at least 1")

func batch(p model.Params, first uint32, count int, dir string) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", errInvalidCount, count)
	}
	for i := 0; i < count; i++ {
		seed := first + uint32(i)
		fmt.Printf("Exporting %v of %v (seed %v)\n", i+1, count, seed)
		song := generator.Generate(p, seed)
		path := filepath.Join(dir, fmt.Sprintf("seed-%d.mid", seed))
		if err := exportFile(path, song, model.DefaultInstruments()); err != nil {
			return err
		}
	}
	return nil
}
