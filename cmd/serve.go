package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/seedsong/constants"
	"github.com/jsphweid/seedsong/generator"
	"github.com/jsphweid/seedsong/midi"
	"github.com/jsphweid/seedsong/model"
	"github.com/jsphweid/seedsong/rng"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generator over HTTP",
	Long:  `Serves /generate, /export and /defaults on $PORT (default 8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

const requestIDHeader = "X-Request-Id"

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("could not decode request body: %w", err)
	}
	return nil
}

func resolveSeed(seed *uint32) uint32 {
	if seed != nil {
		return *seed
	}
	return rng.NewSeed()
}

// HandleGenerate composes a song and returns it along with the playback
// settings a player needs.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	input := model.GenerateRequestBody{Params: model.DefaultParams()}
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := input.Params.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seed := resolveSeed(input.Seed)
	song := generator.Generate(input.Params, seed)

	fx := model.DefaultFx()
	if input.Fx != nil {
		fx = fx.Merge(*input.Fx)
	}

	slog.Debug("generated song", "request_id", w.Header().Get(requestIDHeader), "seed", seed, "events", song.EventCount())
	writeJSON(w, model.GenerateResponse{
		Seed: seed,
		Song: song,
		Playback: model.Playback{
			Humanize: song.Humanize,
			Volumes:  model.DefaultVolumes().Merge(input.Volumes),
			Fx:       fx,
		},
	})
}

// HandleExport composes a song and returns it as a Standard MIDI File.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	input := model.ExportRequestBody{Params: model.DefaultParams()}
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := input.Params.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	instruments := model.DefaultInstruments()
	for name, program := range input.Instruments {
		if !slices.Contains(model.MelodicTracks, name) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%q is not a melodic track", name))
			return
		}
		if program > 127 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("program for %v must be 0-127", name))
			return
		}
		instruments[name] = program
	}

	seed := resolveSeed(input.Seed)
	song := generator.Generate(input.Params, seed)
	data, err := midi.SongBytes(song, instruments)
	if err != nil {
		slog.Error("export failed", "seed", seed, "error", err)
		writeError(w, http.StatusInternalServerError, "could not export song")
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v.mid"`, uuid.New()))
	w.Header().Set("X-Seed", fmt.Sprint(seed))
	w.Write(data)
}

func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.DefaultsResponse{
		Params:      model.DefaultParams(),
		Volumes:     model.DefaultVolumes(),
		Fx:          model.DefaultFx(),
		Instruments: model.DefaultInstruments(),
	})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/generate", HandleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/export", HandleExport).Methods(http.MethodPost)
	router.HandleFunc("/defaults", HandleDefaults).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, "X-Seed", "Content-Disposition"},
	}).Handler(router)
}

func serve() error {
	addr := ":" + constants.GetPort()
	slog.Info("serving", "addr", addr)
	err := http.ListenAndServe(addr, NewRouter())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
