package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/seedsong/constants"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seedsong",
	Short: "Seeded multi-track song generator",
	Long: `seedsong composes drums, bass, chords, arpeggio and lead parts from a key,
a chord progression and a seed. The same params and seed always give the same song.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: constants.GetLogLevel(),
		})))
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
