package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Nil Input Yields Nil", func(t *testing.T) {
		assert.Nil(t, Normalize(nil))
	})

	t.Run("Counts And Flags", func(t *testing.T) {
		raw := &Raw{
			ReadTimeMs: 1800,
			KeyEvents:  []KeyEvent{{At: 0}, {At: 3000}, {At: 4000}, {At: 8000}},
			PointerSamples: []PointerSample{
				{X: 0, Y: 0, At: 0}, {X: 3, Y: 1, At: 50}, {X: 7, Y: 2, At: 100},
			},
		}

		s := Normalize(raw)

		assert.NotNil(t, s)
		assert.Equal(t, int64(1800), s.ReadTimeMs)
		assert.Equal(t, 4, s.KeystrokeCount)
		assert.Equal(t, 3, s.PointerSamples)
		assert.Equal(t, 2, s.HesitationMarkers)
		assert.True(t, s.HasInteractionLog)
		assert.Empty(t, s.DeviceFingerprint)
	})

	t.Run("No Interaction Without Events", func(t *testing.T) {
		s := Normalize(&Raw{ReadTimeMs: 1200})

		assert.NotNil(t, s)
		assert.False(t, s.HasInteractionLog)
	})

	t.Run("Device Material Is Hashed", func(t *testing.T) {
		raw := &Raw{
			Device: &Device{
				UserAgent:    "Mozilla/5.0",
				Screen:       "1920x1080",
				Timezone:     "America/Sao_Paulo",
				Languages:    []string{"pt-BR", "en"},
				NetworkFlags: []string{"vpn"},
			},
		}

		s := Normalize(raw)

		assert.Len(t, s.DeviceFingerprint, 32)
		assert.NotContains(t, s.DeviceFingerprint, "Mozilla")
		assert.Equal(t, []string{"vpn"}, s.NetworkFlags)
	})
}

func TestFingerprintHash(t *testing.T) {
	base := &Device{UserAgent: "ua", Screen: "800x600", Timezone: "UTC", Languages: []string{"en"}}

	t.Run("Stable For Identical Material", func(t *testing.T) {
		other := &Device{UserAgent: "ua", Screen: "800x600", Timezone: "UTC", Languages: []string{"en"}}

		assert.Equal(t, FingerprintHash(base), FingerprintHash(other))
	})

	t.Run("Distinct For Different Material", func(t *testing.T) {
		other := &Device{UserAgent: "ua2", Screen: "800x600", Timezone: "UTC", Languages: []string{"en"}}

		assert.NotEqual(t, FingerprintHash(base), FingerprintHash(other))
	})
}

func TestLinearity(t *testing.T) {
	t.Run("Straight Line Scores One", func(t *testing.T) {
		samples := []PointerSample{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4},
		}

		s := Normalize(&Raw{PointerSamples: samples})

		assert.InDelta(t, 1.0, s.PointerLinearity, 0.0001)
	})

	t.Run("Curved Path Scores Lower", func(t *testing.T) {
		straight := Normalize(&Raw{PointerSamples: []PointerSample{
			{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		}})
		curved := Normalize(&Raw{PointerSamples: []PointerSample{
			{X: 0, Y: 0}, {X: 5, Y: 6}, {X: 10, Y: 0},
		}})

		assert.Less(t, curved.PointerLinearity, straight.PointerLinearity)
	})

	t.Run("Too Few Samples", func(t *testing.T) {
		s := Normalize(&Raw{PointerSamples: []PointerSample{{X: 0, Y: 0}, {X: 1, Y: 1}}})

		assert.Zero(t, s.PointerLinearity)
	})

	t.Run("Zero Length Chord", func(t *testing.T) {
		s := Normalize(&Raw{PointerSamples: []PointerSample{
			{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 1, Y: 1},
		}})

		assert.Zero(t, s.PointerLinearity)
	})
}
