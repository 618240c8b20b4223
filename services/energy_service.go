package services

import (
	"strings"

	"backend/lexicon"
	"backend/models"
)

// EnergyService estimates calories burnt from an activity, its duration and
// intensity, and the user's body weight, using the MET table. It never
// fails: every miss in the resolution chain falls through to a default.
type EnergyService struct {
	lex *lexicon.Lexicon
}

func NewEnergyService(lex *lexicon.Lexicon) *EnergyService {
	return &EnergyService{lex: lex}
}

// Calculate returns (calories, metValue). MET resolution order: exact
// activity row at the requested intensity, same row at moderate for an
// unknown intensity, substring match against table rows, then DefaultMET.
// Formula: met * weightKg * hours.
func (s *EnergyService) Calculate(activityType string, durationMinutes float64, intensity string, bodyWeightKg float64) (float64, float64) {
	activity := strings.ToLower(strings.TrimSpace(activityType))
	level := strings.ToLower(strings.TrimSpace(intensity))

	met := lexicon.DefaultMET
	if entry, ok := s.lookup(activity); ok {
		met = metForIntensity(entry, level)
	}

	calories := met * bodyWeightKg * (durationMinutes / 60.0)
	return calories, met
}

func (s *EnergyService) lookup(activity string) (lexicon.METEntry, bool) {
	if activity == "" {
		return lexicon.METEntry{}, false
	}
	for _, e := range s.lex.MET {
		if e.Activity == activity {
			return e, true
		}
	}
	for _, e := range s.lex.MET {
		if strings.Contains(activity, e.Activity) || strings.Contains(e.Activity, activity) {
			return e, true
		}
	}
	return lexicon.METEntry{}, false
}

func metForIntensity(e lexicon.METEntry, intensity string) float64 {
	switch intensity {
	case models.IntensityLow:
		return e.Low
	case models.IntensityHigh:
		return e.High
	default:
		return e.Moderate
	}
}
