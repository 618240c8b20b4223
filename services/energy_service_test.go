package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/lexicon"
	"backend/models"
)

func TestCalculateKnownActivity(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	// running @ high = 11.5 MET; 70kg for 30 min.
	calories, met := svc.Calculate("running", 30, models.IntensityHigh, 70)
	assert.InDelta(t, 11.5, met, 1e-9)
	assert.InDelta(t, 11.5*70*0.5, calories, 1e-9)

	calories, met = svc.Calculate("yoga", 60, models.IntensityLow, 60)
	assert.InDelta(t, 2.5, met, 1e-9)
	assert.InDelta(t, 2.5*60*1.0, calories, 1e-9)
}

func TestCalculateUnknownIntensityFallsBackToModerate(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	_, met := svc.Calculate("running", 30, "extreme", 70)
	assert.InDelta(t, 9.8, met, 1e-9)

	_, met = svc.Calculate("running", 30, "", 70)
	assert.InDelta(t, 9.8, met, 1e-9)
}

func TestCalculateSubstringActivityMatch(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	_, met := svc.Calculate("treadmill running", 30, models.IntensityModerate, 70)
	assert.InDelta(t, 9.8, met, 1e-9)
}

func TestCalculateUnknownActivityUsesDefaultMET(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	calories, met := svc.Calculate("zumba", 30, models.IntensityHigh, 70)
	assert.InDelta(t, lexicon.DefaultMET, met, 1e-9)
	assert.InDelta(t, lexicon.DefaultMET*70*0.5, calories, 1e-9)

	_, met = svc.Calculate("", 30, models.IntensityModerate, 70)
	assert.InDelta(t, lexicon.DefaultMET, met, 1e-9)
}

func TestCalculateNormalizesInput(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	_, met := svc.Calculate("  Running ", 30, " HIGH ", 70)
	assert.InDelta(t, 11.5, met, 1e-9)
}

func TestCalculateZeroDuration(t *testing.T) {
	svc := NewEnergyService(lexicon.New())

	calories, _ := svc.Calculate("running", 0, models.IntensityHigh, 70)
	assert.Zero(t, calories)
}
