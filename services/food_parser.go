package services

import (
	"strconv"
	"strings"

	"backend/lexicon"
	"backend/models"
)

// FoodParser extracts food mentions from a transcript using lexicon rules
// only. It never fails; unrecognizable input yields an empty slice.
type FoodParser struct {
	lex *lexicon.Lexicon
}

func NewFoodParser(lex *lexicon.Lexicon) *FoodParser {
	return &FoodParser{lex: lex}
}

// Extract segments the transcript into clauses and parses each one. Clauses
// containing workout vocabulary are rejected so cross-domain text does not
// leak into food extraction. If no clause yields a mention, the whole
// transcript is retried once under the same rules.
func (p *FoodParser) Extract(transcript string) []models.FoodMention {
	lowered := strings.ToLower(transcript)

	var mentions []models.FoodMention
	for _, clause := range SplitClauses(lowered) {
		if p.hasWorkoutWord(clause) {
			continue
		}
		if m, ok := p.parseClause(clause); ok {
			mentions = append(mentions, m)
		}
	}

	if len(mentions) == 0 && !p.hasWorkoutWord(lowered) {
		if m, ok := p.parseClause(strings.TrimSpace(lowered)); ok {
			mentions = append(mentions, m)
		}
	}

	return mentions
}

func (p *FoodParser) hasWorkoutWord(clause string) bool {
	for _, w := range p.lex.WorkoutWords {
		if strings.Contains(clause, w) {
			return true
		}
	}
	return false
}

func (p *FoodParser) parseClause(clause string) (models.FoodMention, bool) {
	words := strings.Fields(clause)

	foodName := ""
	quantity := 1.0
	unit := "serving"

	// Quantity pass: first numeral or number-word wins, then the following
	// 1-2 words decide the unit and where the food name starts.
	for i, w := range words {
		num, ok := p.parseNumber(w)
		if !ok {
			continue
		}
		quantity = num
		if i+1 < len(words) {
			next := words[i+1]
			if container, isContainer := containerUnit(next); isContainer && i+2 < len(words) && words[i+2] == "of" {
				unit = container
				if i+3 < len(words) {
					foodName = strings.Join(words[i+3:], " ")
				}
			} else if p.lex.IsUnit(next) {
				unit = next
				rest := i + 2
				if rest < len(words) && words[rest] == "of" {
					rest++
				}
				if rest < len(words) {
					foodName = strings.Join(words[rest:], " ")
				}
			} else {
				foodName = strings.Join(words[i+1:], " ")
			}
		}
		break
	}

	// No quantity-anchored name: fall back to scanning the food lexicon.
	if foodName == "" {
		for _, keyword := range p.lex.FoodKeywords {
			if strings.Contains(clause, keyword) {
				foodName = p.extractName(keyword, clause)
				break
			}
		}
	}

	for _, filler := range p.lex.Fillers {
		foodName = strings.ReplaceAll(foodName, filler, "")
	}
	foodName = strings.TrimSpace(foodName)

	if foodName == "" {
		return models.FoodMention{}, false
	}

	// Reject names that carry no known food token; quantity-only or filler-
	// only clauses would otherwise produce bogus mentions.
	if !p.containsFoodKeyword(foodName) {
		return models.FoodMention{}, false
	}

	// Qualitative quantity cascade; a phrase anywhere in the clause overrides
	// a previously parsed numeral, first matching rule wins.
	switch {
	case strings.Contains(clause, "a ") || strings.Contains(clause, "an "):
		quantity = 1.0
	case strings.Contains(clause, "couple"):
		quantity = 2.0
	case strings.Contains(clause, "few"):
		quantity = 3.0
	case strings.Contains(clause, "some") || strings.Contains(clause, "a bit"):
		quantity = 0.5
	case strings.Contains(clause, "full") || strings.Contains(clause, "complete"):
		quantity = 1.0
	}

	// A "<bowl|plate> of" phrase still names the unit even when the quantity
	// was qualitative ("a bowl of dal").
	if unit == "serving" {
		for i := 0; i+1 < len(words); i++ {
			if container, ok := containerUnit(words[i]); ok && words[i+1] == "of" {
				unit = container
				break
			}
		}
	}

	return models.FoodMention{FoodName: foodName, Quantity: quantity, Unit: unit}, true
}

func (p *FoodParser) parseNumber(word string) (float64, bool) {
	if n, err := strconv.ParseFloat(word, 64); err == nil {
		return n, true
	}
	n, ok := p.lex.NumberWords[word]
	return n, ok
}

// extractName captures a short phrase starting at the matched keyword,
// extending one token when it is a qualifier commonly paired with foods
// ("dal fry", "fried rice" when matched on a single token).
func (p *FoodParser) extractName(keyword, clause string) string {
	words := strings.Fields(clause)
	for i, w := range words {
		if !strings.Contains(w, keyword) {
			continue
		}
		end := i + 1
		if end < len(words) {
			if _, ok := p.lex.NameQualifiers[words[end]]; ok {
				end++
			}
		}
		return strings.Join(words[i:end], " ")
	}
	return keyword
}

func (p *FoodParser) containsFoodKeyword(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range p.lex.FoodKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// containerUnit normalizes the container words that take an "of" phrase.
func containerUnit(word string) (string, bool) {
	switch word {
	case "bowl", "bowls":
		return "bowls", true
	case "plate", "plates":
		return "plates", true
	}
	return "", false
}
