package model

// Channel names a mixer strip. Every TrackName is a channel, plus Master.
type Channel string

const Master Channel = "master"

// Volumes holds decibel offsets per mixer channel.
type Volumes map[Channel]float64

func DefaultVolumes() Volumes {
	return Volumes{
		Channel(KickDrum):  -6,
		Channel(SnareDrum): -10,
		Channel(HiHat):     -14,
		Channel(Bass):      -8,
		Channel(Chords):    -10,
		Channel(Arpeggio):  -14,
		Channel(Lead):      -9,
		Master:             0,
	}
}

// Merge returns a new Volumes with patch applied on top of v.
func (v Volumes) Merge(patch Volumes) Volumes {
	res := make(Volumes, len(v)+len(patch))
	for k, db := range v {
		res[k] = db
	}
	for k, db := range patch {
		res[k] = db
	}
	return res
}

type Reverb struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Wet     float64 `json:"wet" yaml:"wet"`
	Decay   float64 `json:"decay" yaml:"decay"`
}

type Delay struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Wet      float64 `json:"wet" yaml:"wet"`
	Feedback float64 `json:"feedback" yaml:"feedback"`
}

// Pump is the sidechain-style volume ducking on the master bus.
type Pump struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Depth   float64 `json:"depth" yaml:"depth"`
}

type Compressor struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Ratio     float64 `json:"ratio" yaml:"ratio"`
}

type Chorus struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Wet     float64 `json:"wet" yaml:"wet"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Depth   float64 `json:"depth" yaml:"depth"`
}

type Distortion struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Amount  float64 `json:"amount" yaml:"amount"`
}

// FxParams is the effects configuration handed to a player. It is a plain
// value; use Merge to derive a changed copy.
type FxParams struct {
	Reverb     Reverb     `json:"reverb" yaml:"reverb"`
	Delay      Delay      `json:"delay" yaml:"delay"`
	Pump       Pump       `json:"pump" yaml:"pump"`
	Compressor Compressor `json:"compressor" yaml:"compressor"`
	Chorus     Chorus     `json:"chorus" yaml:"chorus"`
	Distortion Distortion `json:"distortion" yaml:"distortion"`
}

func DefaultFx() FxParams {
	return FxParams{
		Reverb:     Reverb{Enabled: true, Wet: 0.15, Decay: 2.8},
		Delay:      Delay{Enabled: true, Wet: 0.1, Feedback: 0.25},
		Pump:       Pump{Enabled: false, Depth: 0},
		Compressor: Compressor{Enabled: true, Threshold: -24, Ratio: 3},
		Chorus:     Chorus{Enabled: false, Wet: 0, Rate: 1.5, Depth: 0.7},
		Distortion: Distortion{Enabled: false, Amount: 0},
	}
}

// FxPatch is a partial FxParams. Nil fields leave the base value untouched.
type FxPatch struct {
	ReverbEnabled       *bool    `json:"reverbEnabled,omitempty" yaml:"reverbEnabled,omitempty"`
	ReverbWet           *float64 `json:"reverbWet,omitempty" yaml:"reverbWet,omitempty"`
	ReverbDecay         *float64 `json:"reverbDecay,omitempty" yaml:"reverbDecay,omitempty"`
	DelayEnabled        *bool    `json:"delayEnabled,omitempty" yaml:"delayEnabled,omitempty"`
	DelayWet            *float64 `json:"delayWet,omitempty" yaml:"delayWet,omitempty"`
	DelayFeedback       *float64 `json:"delayFeedback,omitempty" yaml:"delayFeedback,omitempty"`
	PumpEnabled         *bool    `json:"pumpEnabled,omitempty" yaml:"pumpEnabled,omitempty"`
	PumpDepth           *float64 `json:"pumpDepth,omitempty" yaml:"pumpDepth,omitempty"`
	CompressorEnabled   *bool    `json:"compressorEnabled,omitempty" yaml:"compressorEnabled,omitempty"`
	CompressorThreshold *float64 `json:"compressorThreshold,omitempty" yaml:"compressorThreshold,omitempty"`
	CompressorRatio     *float64 `json:"compressorRatio,omitempty" yaml:"compressorRatio,omitempty"`
	ChorusEnabled       *bool    `json:"chorusEnabled,omitempty" yaml:"chorusEnabled,omitempty"`
	ChorusWet           *float64 `json:"chorusWet,omitempty" yaml:"chorusWet,omitempty"`
	ChorusRate          *float64 `json:"chorusRate,omitempty" yaml:"chorusRate,omitempty"`
	ChorusDepth         *float64 `json:"chorusDepth,omitempty" yaml:"chorusDepth,omitempty"`
	DistortionEnabled   *bool    `json:"distortionEnabled,omitempty" yaml:"distortionEnabled,omitempty"`
	DistortionAmount    *float64 `json:"distortionAmount,omitempty" yaml:"distortionAmount,omitempty"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Merge returns a copy of f with every non-nil field of p applied.
func (f FxParams) Merge(p FxPatch) FxParams {
	set(&f.Reverb.Enabled, p.ReverbEnabled)
	set(&f.Reverb.Wet, p.ReverbWet)
	set(&f.Reverb.Decay, p.ReverbDecay)
	set(&f.Delay.Enabled, p.DelayEnabled)
	set(&f.Delay.Wet, p.DelayWet)
	set(&f.Delay.Feedback, p.DelayFeedback)
	set(&f.Pump.Enabled, p.PumpEnabled)
	set(&f.Pump.Depth, p.PumpDepth)
	set(&f.Compressor.Enabled, p.CompressorEnabled)
	set(&f.Compressor.Threshold, p.CompressorThreshold)
	set(&f.Compressor.Ratio, p.CompressorRatio)
	set(&f.Chorus.Enabled, p.ChorusEnabled)
	set(&f.Chorus.Wet, p.ChorusWet)
	set(&f.Chorus.Rate, p.ChorusRate)
	set(&f.Chorus.Depth, p.ChorusDepth)
	set(&f.Distortion.Enabled, p.DistortionEnabled)
	set(&f.Distortion.Amount, p.DistortionAmount)
	return f
}

// Playback is everything an audio engine needs besides the Song itself.
type Playback struct {
	Humanize float64  `json:"humanize"`
	Volumes  Volumes  `json:"volumes"`
	Fx       FxParams `json:"fx"`
}
