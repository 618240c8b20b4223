// Package lexicon holds the static reference data the transcript engine
// matches against: the food nutrient table, the MET table, and the shared
// unit/quantity vocabularies. A Lexicon is built once at startup and is
// read-only thereafter, so it is safe for concurrent use.
package lexicon

type Lexicon struct {
	Foods        []FoodRecord
	FoodKeywords []string
	MET          []METEntry
	Activities   []ActivityPattern
	Intensities  []IntensityPattern

	Units          map[string]struct{}
	NumberWords    map[string]float64
	DurationUnits  map[string]float64
	WorkoutWords   []string
	NameQualifiers map[string]struct{}
	Fillers        []string

	highIntensity map[string]struct{}
	lowIntensity  map[string]struct{}
}

func New() *Lexicon {
	lex := &Lexicon{
		Foods:          foodRecords(),
		FoodKeywords:   foodKeywords(),
		MET:            metEntries(),
		Activities:     activityPatterns(),
		Intensities:    intensityPatterns(),
		Units:          unitTokens(),
		NumberWords:    numberWords(),
		DurationUnits:  durationUnits(),
		WorkoutWords:   workoutDomainWords(),
		NameQualifiers: foodNameQualifiers(),
		Fillers:        fillerPhrases(),
		highIntensity:  make(map[string]struct{}),
		lowIntensity:   make(map[string]struct{}),
	}
	for _, a := range highIntensityActivities() {
		lex.highIntensity[a] = struct{}{}
	}
	for _, a := range lowIntensityActivities() {
		lex.lowIntensity[a] = struct{}{}
	}
	return lex
}

// InferredIntensity returns the fallback intensity class of an activity when
// a clause carries no explicit intensity keyword.
func (l *Lexicon) InferredIntensity(activity string) string {
	if _, ok := l.highIntensity[activity]; ok {
		return "high"
	}
	if _, ok := l.lowIntensity[activity]; ok {
		return "low"
	}
	return "moderate"
}

// IsUnit reports whether the token is a recognized quantity unit.
func (l *Lexicon) IsUnit(token string) bool {
	_, ok := l.Units[token]
	return ok
}
