package lexicon

func unitTokens() map[string]struct{} {
	units := []string{
		"piece", "pieces", "cup", "cups", "bowl", "bowls", "plate", "plates",
		"serving", "servings", "slice", "slices", "gram", "grams", "kg",
		"kilogram", "ml", "liter", "litre", "tbsp", "tablespoon", "tsp",
		"teaspoon",
	}
	m := make(map[string]struct{}, len(units))
	for _, u := range units {
		m[u] = struct{}{}
	}
	return m
}

func numberWords() map[string]float64 {
	return map[string]float64{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"half": 0.5, "quarter": 0.25,
	}
}

// durationUnits maps a duration word to its multiplier in minutes.
func durationUnits() map[string]float64 {
	return map[string]float64{
		"hour": 60, "hours": 60, "hr": 60, "hrs": 60,
		"minute": 1, "minutes": 1, "min": 1, "mins": 1,
	}
}

// workoutDomainWords are the tokens that mark a clause as workout territory.
// The food extractor rejects any clause containing one of these.
func workoutDomainWords() []string {
	return []string{
		"run", "running", "ran", "jog", "jogging", "walk", "walking",
		"cycle", "cycling", "bike", "swim", "swimming", "gym", "weight",
		"weightlifting", "lifting", "yoga", "pilates", "dance", "dancing",
		"basketball", "football", "soccer", "tennis", "badminton", "cricket",
		"hiit", "cardio", "treadmill", "elliptical", "rowing", "crossfit",
		"exercise", "workout",
	}
}

// foodNameQualifiers extend a keyword-extracted food name by one token, for
// combinations such as "dal fry" or "fried rice".
func foodNameQualifiers() map[string]struct{} {
	return map[string]struct{}{
		"fry": {}, "fried": {}, "tadka": {}, "curry": {}, "soup": {}, "salad": {},
	}
}

// fillerPhrases are stripped from the front of a captured food name.
func fillerPhrases() []string {
	return []string{"i ate", "i had", "i'm eating"}
}
