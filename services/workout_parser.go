package services

import (
	"strconv"
	"strings"

	"backend/lexicon"
	"backend/models"
)

// WorkoutParser extracts workout mentions from a transcript. Like the food
// parser it never fails and returns an empty slice for unrecognizable input.
type WorkoutParser struct {
	lex *lexicon.Lexicon
}

func NewWorkoutParser(lex *lexicon.Lexicon) *WorkoutParser {
	return &WorkoutParser{lex: lex}
}

func (p *WorkoutParser) Extract(transcript string) []models.WorkoutMention {
	lowered := strings.ToLower(transcript)

	var mentions []models.WorkoutMention
	for _, clause := range SplitClauses(lowered) {
		if m, ok := p.parseClause(clause); ok {
			mentions = append(mentions, m)
		}
	}

	if len(mentions) == 0 {
		if m, ok := p.parseClause(strings.TrimSpace(lowered)); ok {
			mentions = append(mentions, m)
		}
	}

	return mentions
}

func (p *WorkoutParser) parseClause(clause string) (models.WorkoutMention, bool) {
	activity := ""
	for _, pat := range p.lex.Activities {
		if strings.Contains(clause, pat.Pattern) {
			activity = pat.Activity
			break
		}
	}
	if activity == "" {
		return models.WorkoutMention{}, false
	}

	duration := p.parseDuration(clause)

	intensity := ""
	for _, pat := range p.lex.Intensities {
		if strings.Contains(clause, pat.Pattern) {
			intensity = pat.Intensity
			break
		}
	}
	if intensity == "" {
		intensity = p.lex.InferredIntensity(activity)
	}

	return models.WorkoutMention{
		ActivityType:    activity,
		DurationMinutes: duration,
		Intensity:       intensity,
	}, true
}

// parseDuration scans for "<number> <unit>" or "<unit> <number>" patterns
// ("30 minutes", "an hour"). Anything unparseable falls back to 30 minutes.
func (p *WorkoutParser) parseDuration(clause string) float64 {
	words := strings.Fields(clause)
	for i, w := range words {
		if num, err := strconv.ParseFloat(w, 64); err == nil {
			if i+1 < len(words) {
				if mult, ok := p.lex.DurationUnits[words[i+1]]; ok {
					return num * mult
				}
			}
			if i > 0 {
				if mult, ok := p.lex.DurationUnits[words[i-1]]; ok {
					return num * mult
				}
			}
			continue
		}
		num, ok := p.lex.NumberWords[w]
		if !ok {
			// Articles count as one when a duration unit follows ("an hour").
			if w != "a" && w != "an" {
				continue
			}
			num = 1
		}
		if i+1 < len(words) {
			if mult, ok := p.lex.DurationUnits[words[i+1]]; ok {
				return num * mult
			}
		}
	}
	return 30.0
}
