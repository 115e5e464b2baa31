package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFxMergeIsPure(t *testing.T) {
	base := DefaultFx()
	wet := 0.4
	on := true
	amount := 0.3

	merged := base.Merge(FxPatch{ReverbWet: &wet, DistortionEnabled: &on, DistortionAmount: &amount})

	assert := assert.New(t)
	assert.Equal(DefaultFx(), base)
	assert.Equal(0.4, merged.Reverb.Wet)
	assert.Equal(2.8, merged.Reverb.Decay)
	assert.Equal(Distortion{Enabled: true, Amount: 0.3}, merged.Distortion)
	assert.Equal(base.Delay, merged.Delay)
	assert.Equal(base.Chorus, merged.Chorus)
}

func TestFxMergeEmptyPatch(t *testing.T) {
	assert.Equal(t, DefaultFx(), DefaultFx().Merge(FxPatch{}))
}

func TestVolumesMerge(t *testing.T) {
	base := DefaultVolumes()
	merged := base.Merge(Volumes{Master: -3, Channel(Lead): 0})

	assert := assert.New(t)
	assert.Equal(-3.0, merged[Master])
	assert.Equal(0.0, merged[Channel(Lead)])
	assert.Equal(-14.0, merged[Channel(HiHat)])
	// base untouched
	assert.Equal(0.0, base[Master])
	assert.Equal(-9.0, base[Channel(Lead)])
	assert.Len(merged, 8)
}

func TestDefaultInstrumentsCoverMelodicTracks(t *testing.T) {
	instruments := DefaultInstruments()
	for _, name := range MelodicTracks {
		_, ok := instruments[name]
		assert.True(t, ok, name)
	}
	assert.Len(t, instruments, len(MelodicTracks))
}
