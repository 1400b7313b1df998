package fraud

import (
	"fmt"
	"math"

	"onboarding-service/internal/app/models"
)

const (
	networkAnomalySeverity   = 20
	extraFingerprintSeverity = 25

	periodicityMinSamples = 5
	periodicityCV         = 0.05
	missingMetadataShare  = 0.8
	collinearityFloor     = 0.95
)

var anomalousNetworkFlags = map[string]bool{
	"vpn": true, "proxy": true, "tor": true,
}

// analyzeTechnical inspects device and network fingerprints and detects
// automation from timing periodicity, missing interaction metadata and
// collinear pointer trajectories.
func analyzeTechnical(responses []models.Response) analysis {
	a := analysis{}
	n := len(responses)
	if n == 0 {
		return a
	}

	fingerprints := map[string]bool{}
	seenNetworkFlags := map[string]bool{}
	withInteraction := 0
	var linearitySum float64
	linearitySamples := 0
	for _, r := range responses {
		if r.Metadata == nil {
			continue
		}
		if r.Metadata.DeviceFingerprint != "" {
			fingerprints[r.Metadata.DeviceFingerprint] = true
		}
		for _, flag := range r.Metadata.NetworkFlags {
			if anomalousNetworkFlags[flag] {
				seenNetworkFlags[flag] = true
			}
		}
		if r.Metadata.HasInteractionLog {
			withInteraction++
		}
		if r.Metadata.PointerSamples > 0 {
			linearitySum += r.Metadata.PointerLinearity
			linearitySamples++
		}
	}

	if len(fingerprints) > 1 {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "multiple_device_fingerprints",
			Category: models.FraudCategoryTechnical,
			Severity: extraFingerprintSeverity * float64(len(fingerprints)-1),
			Evidence: fmt.Sprintf("%d distinct device fingerprints in one session", len(fingerprints)),
		})
	}
	for flag := range seenNetworkFlags {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "network_anomaly_" + flag,
			Category: models.FraudCategoryTechnical,
			Severity: networkAnomalySeverity,
			Evidence: "network flagged as " + flag,
		})
	}

	a.Factors = append(a.Factors, automationFactors(responses, withInteraction, linearitySum, linearitySamples)...)

	a.Confidence = 0.6 + 0.4*math.Min(float64(n)/10, 1)
	return a
}

// automationFactors detects machine-driven sessions.
func automationFactors(responses []models.Response, withInteraction int, linearitySum float64, linearitySamples int) []models.FraudRiskFactor {
	var factors []models.FraudRiskFactor
	n := len(responses)

	if cv, ok := timingCV(responses); ok && cv < periodicityCV {
		factors = append(factors, models.FraudRiskFactor{
			Name:     "timing_periodicity",
			Category: models.FraudCategoryTechnical,
			Severity: 30,
			Evidence: fmt.Sprintf("response intervals nearly constant (cv=%.3f)", cv),
		})
	}

	if n >= 3 && float64(n-withInteraction)/float64(n) > missingMetadataShare {
		factors = append(factors, models.FraudRiskFactor{
			Name:     "missing_interaction_metadata",
			Category: models.FraudCategoryTechnical,
			Severity: 20,
			Evidence: fmt.Sprintf("%d of %d responses lack human interaction logs", n-withInteraction, n),
		})
	}

	if linearitySamples > 0 && linearitySum/float64(linearitySamples) > collinearityFloor {
		factors = append(factors, models.FraudRiskFactor{
			Name:     "collinear_pointer_movement",
			Category: models.FraudCategoryTechnical,
			Severity: 25,
			Evidence: fmt.Sprintf("mean pointer linearity %.3f across %d samples", linearitySum/float64(linearitySamples), linearitySamples),
		})
	}
	return factors
}

// timingCV returns the coefficient of variation of response times.
func timingCV(responses []models.Response) (float64, bool) {
	if len(responses) < periodicityMinSamples {
		return 0, false
	}
	var sum float64
	for _, r := range responses {
		sum += float64(r.ResponseTimeMs)
	}
	mean := sum / float64(len(responses))
	if mean == 0 {
		return 0, false
	}
	var variance float64
	for _, r := range responses {
		d := float64(r.ResponseTimeMs) - mean
		variance += d * d
	}
	variance /= float64(len(responses))
	return math.Sqrt(variance) / mean, true
}
