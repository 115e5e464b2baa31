package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jsphweid/seedsong/generator"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/util"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	reportFlags   paramsFlags
	reportSamples int
)

func init() {
	reportFlags.register(reportCmd)
	reportCmd.Flags().IntVarP(&reportSamples, "samples", "n", 500, "number of seeds to sample")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports event statistics over many seeds",
	Long:  `Generates the same params with many seeds and reports how full each track gets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := reportFlags.params(cmd)
		if err != nil {
			return err
		}
		r, err := sample(p, reportFlags.seedFor(cmd), reportSamples)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), r)
		return nil
	},
}

type trackReport struct {
	min, max int
	mean     float64
	capacity int
}

type densityReport struct {
	samples int
	tracks  map[model.TrackName]trackReport
}

// trackCapacity is the most events a track can hold for p, i.e. what density 1
// would give if every draw passed.
func trackCapacity(p model.Params, name model.TrackName) int {
	perBar := map[model.TrackName]int{
		model.KickDrum:  4,
		model.SnareDrum: 2,
		model.HiHat:     8,
		model.Bass:      4,
		model.Chords:    3,
		model.Arpeggio:  16,
		model.Lead:      8,
	}
	return perBar[name] * p.Bars
}

// sample generates count songs for consecutive seeds in parallel. Each
// goroutine owns its own stream and song.
func sample(p model.Params, first uint32, count int) (densityReport, error) {
	if count < 1 {
		return densityReport{}, fmt.Errorf("%w: got %d", errInvalidCount, count)
	}
	counts := make([]map[model.TrackName]int, count)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			song := generator.Generate(p, first+uint32(i))
			c := make(map[model.TrackName]int, len(song.Tracks))
			for name, events := range song.Tracks {
				c[name] = len(events)
			}
			counts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return densityReport{}, err
	}

	res := densityReport{samples: count, tracks: make(map[model.TrackName]trackReport)}
	for _, name := range model.TrackNames {
		values := make([]int, count)
		for i, c := range counts {
			values[i] = c[name]
		}
		tr := trackReport{mean: util.Mean(values), capacity: trackCapacity(p, name)}
		if count > 0 {
			tr.min, tr.max = values[0], values[0]
		}
		for _, v := range values {
			tr.min = util.Min(tr.min, v)
			tr.max = util.Max(tr.max, v)
		}
		res.tracks[name] = tr
	}
	return res, nil
}

func printReport(w io.Writer, r densityReport) {
	fmt.Fprintf(w, "samples: %v\n", r.samples)
	for _, name := range model.TrackNames {
		tr := r.tracks[name]
		fill := 0.0
		if tr.capacity > 0 {
			fill = tr.mean / float64(tr.capacity)
		}
		fmt.Fprintf(w, "%-10v mean %7.2f  min %4d  max %4d  capacity %4d  fill %5.1f%%\n",
			name, tr.mean, tr.min, tr.max, tr.capacity, fill*100)
	}
}
