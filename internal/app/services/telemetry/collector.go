package telemetry

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/blake2b"

	"onboarding-service/internal/app/models"
)

// PointerSample is one raw pointer position reported by the UI layer.
type PointerSample struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	At int64   `json:"at"`
}

// KeyEvent is one raw keystroke event. Only timings are used; key content
// is never inspected.
type KeyEvent struct {
	At int64 `json:"at"`
}

// Device is the raw device/network fingerprint material supplied by the
// UI. It is hashed before anything is stored.
type Device struct {
	UserAgent    string   `json:"user_agent,omitempty"`
	Screen       string   `json:"screen,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	NetworkFlags []string `json:"network_flags,omitempty"`
}

// Raw is the unnormalized interaction telemetry attached to a submission.
type Raw struct {
	ReadTimeMs     int64           `json:"read_time_ms,omitempty"`
	PointerSamples []PointerSample `json:"pointer_samples,omitempty"`
	KeyEvents      []KeyEvent      `json:"key_events,omitempty"`
	Device         *Device         `json:"device,omitempty"`
}

// hesitationPauseMs is the inter-keystroke gap counted as a hesitation.
const hesitationPauseMs = 3000

// Normalize reduces raw interaction telemetry to the structured signals
// the fraud analyzers consume. A nil input yields nil: absence of
// telemetry is preserved, not defaulted.
func Normalize(raw *Raw) *models.Signals {
	if raw == nil {
		return nil
	}
	s := &models.Signals{
		ReadTimeMs:        raw.ReadTimeMs,
		KeystrokeCount:    len(raw.KeyEvents),
		PointerSamples:    len(raw.PointerSamples),
		HesitationMarkers: hesitations(raw.KeyEvents),
		PointerLinearity:  linearity(raw.PointerSamples),
		HasInteractionLog: len(raw.PointerSamples) > 0 || len(raw.KeyEvents) > 0,
	}
	if raw.Device != nil {
		s.DeviceFingerprint = FingerprintHash(raw.Device)
		s.NetworkFlags = append([]string{}, raw.Device.NetworkFlags...)
	}
	return s
}

// FingerprintHash derives a stable, non-reversible device identifier from
// the raw fingerprint material.
func FingerprintHash(d *Device) string {
	material := fmt.Sprintf("%s|%s|%s|%s",
		d.UserAgent, d.Screen, d.Timezone, strings.Join(d.Languages, ","))
	sum := blake2b.Sum256([]byte(material))
	return hex.EncodeToString(sum[:16])
}

// hesitations counts long pauses between consecutive keystrokes.
func hesitations(events []KeyEvent) int {
	count := 0
	for i := 1; i < len(events); i++ {
		if events[i].At-events[i-1].At >= hesitationPauseMs {
			count++
		}
	}
	return count
}

// linearity measures how collinear the pointer trajectory is: 1.0 is a
// perfect line, which human movement essentially never produces.
func linearity(samples []PointerSample) float64 {
	if len(samples) < 3 {
		return 0
	}
	first := samples[0]
	last := samples[len(samples)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0
	}

	// Mean perpendicular distance from the straight first-to-last chord,
	// normalized by chord length.
	var deviation float64
	for _, p := range samples[1 : len(samples)-1] {
		deviation += math.Abs(dy*(p.X-first.X)-dx*(p.Y-first.Y)) / length
	}
	deviation /= float64(len(samples) - 2)
	score := 1 - deviation/length
	if score < 0 {
		return 0
	}
	return score
}
