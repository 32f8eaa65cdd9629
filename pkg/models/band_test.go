package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{1.0, BandEasy},
		{1.5, BandEasy},
		{2.0, BandEasy},
		{2.01, BandMedium},
		{3.5, BandMedium},
		{3.51, BandHard},
		{5.0, BandHard},
		// Out-of-domain scores clamp to the nearest band.
		{0.2, BandEasy},
		{7.0, BandHard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandForScore(tt.score), "score %v", tt.score)
	}
}

func TestBand_ContainsScore(t *testing.T) {
	// Interval edges: Easy is closed on both sides, Medium and Hard are
	// half-open on the left so 2.0 belongs to Easy only and 3.5 to Medium only.
	assert.True(t, BandEasy.ContainsScore(1.0))
	assert.True(t, BandEasy.ContainsScore(2.0))
	assert.False(t, BandMedium.ContainsScore(2.0))
	assert.True(t, BandMedium.ContainsScore(3.5))
	assert.False(t, BandHard.ContainsScore(3.5))
	assert.True(t, BandHard.ContainsScore(5.0))
	assert.False(t, BandHard.ContainsScore(5.01))
}

func TestBand_MidpointScore(t *testing.T) {
	assert.InDelta(t, 1.5, BandEasy.MidpointScore(), 1e-9)
	assert.InDelta(t, 2.75, BandMedium.MidpointScore(), 1e-9)
	assert.InDelta(t, 4.25, BandHard.MidpointScore(), 1e-9)
}

func TestBand_Valid(t *testing.T) {
	for _, b := range Bands() {
		assert.True(t, b.Valid())
	}
	assert.False(t, Band("Extreme").Valid())
	assert.False(t, Band("").Valid())
}

func TestLabelForMastery(t *testing.T) {
	assert.Equal(t, LabelMastered, LabelForMastery(0.85))
	assert.Equal(t, LabelMastered, LabelForMastery(1.0))
	assert.Equal(t, LabelOnTrack, LabelForMastery(0.84))
	assert.Equal(t, LabelOnTrack, LabelForMastery(0.60))
	assert.Equal(t, LabelNeedsFocus, LabelForMastery(0.59))
	assert.Equal(t, LabelNeedsFocus, LabelForMastery(0))
}
