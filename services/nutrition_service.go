package services

import (
	"strings"

	"backend/lexicon"
	"backend/models"
)

// NutritionService resolves a food name against the lexicon and scales its
// nutrient profile to the logged quantity.
type NutritionService struct {
	lex *lexicon.Lexicon
}

func NewNutritionService(lex *lexicon.Lexicon) *NutritionService {
	return &NutritionService{lex: lex}
}

// Resolve looks the food up by lowercased, trimmed name: exact key match
// first, then the first record (in table order) whose key contains the name
// or vice versa. Exact matches always beat partial ones. The second return
// is false when nothing in the lexicon matches; that is a normal outcome,
// not an error.
func (s *NutritionService) Resolve(foodName string, quantity float64, unit string) (models.ScaledNutrients, bool) {
	key := strings.ToLower(strings.TrimSpace(foodName))
	if key == "" {
		return models.ScaledNutrients{}, false
	}

	for _, rec := range s.lex.Foods {
		for _, k := range rec.Keys {
			if k == key {
				return scaleNutrients(rec.Profile, quantity, unit), true
			}
		}
	}

	for _, rec := range s.lex.Foods {
		for _, k := range rec.Keys {
			if strings.Contains(key, k) || strings.Contains(k, key) {
				return scaleNutrients(rec.Profile, quantity, unit), true
			}
		}
	}

	return models.ScaledNutrients{}, false
}

// scaleNutrients converts a per-100g profile to the logged amount. Units are
// treated as serving counts: piece/bowl/plate/cup variants of the entry's
// standard unit take the quantity as-is, and so does any other unit — cross-
// family conversion is not attempted. The linear multiplier holds because
// reference values are per 100g with a known standard serving weight.
func scaleNutrients(p lexicon.NutrientProfile, quantity float64, unit string) models.ScaledNutrients {
	multiplier := quantity * (p.StandardServingGrams / 100.0)

	return models.ScaledNutrients{
		Name:                 p.Name,
		Calories:             p.Calories * multiplier,
		Protein:              p.Protein * multiplier,
		Carbs:                p.Carbs * multiplier,
		Fats:                 p.Fats * multiplier,
		Fiber:                p.Fiber * multiplier,
		Sugar:                p.Sugar * multiplier,
		Sodium:               p.Sodium * multiplier,
		StandardServingGrams: p.StandardServingGrams,
		StandardUnit:         p.StandardUnit,
	}
}
