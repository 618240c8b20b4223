package models

// Intensity levels recognized by the workout extractor and MET table.
const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// FoodMention is a transient extraction candidate: a food phrase with the
// quantity and unit heard alongside it, before nutrient resolution.
type FoodMention struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// WorkoutMention is a transient extraction candidate for a workout clause.
type WorkoutMention struct {
	ActivityType    string  `json:"activity_type"`
	DurationMinutes float64 `json:"duration_minutes"`
	Intensity       string  `json:"intensity"`
}

// ScaledNutrients is a nutrient profile scaled to an actual logged quantity.
type ScaledNutrients struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`

	StandardServingGrams float64 `json:"standard_serving_grams"`
	StandardUnit         string  `json:"standard_unit"`
}

// DuplicateWarning flags a candidate mention that closely matches a recently
// persisted entry. Advisory only; it never blocks persistence.
type DuplicateWarning struct {
	CandidateIndex int    `json:"candidate_index"`
	MatchedEntryID uint   `json:"matched_entry_id"`
	Message        string `json:"message"`
}
