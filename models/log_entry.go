package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLogEntry is one persisted food record. Nutrient fields hold the scaled
// values for the logged quantity, not per-100g references. Entries are
// immutable once created; corrections are delete-and-recreate.
type FoodLogEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	FoodName string  `gorm:"not null" json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"` // mg

	// Set when the food name had no lexicon match: the entry was saved with
	// zero nutrients and needs manual correction.
	NeedsReview bool `json:"needs_review"`

	Transcript   string `json:"transcript,omitempty"`
	RecordingURL string `json:"recording_url,omitempty"`
}

// WorkoutLogEntry is one persisted workout record.
type WorkoutLogEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	ActivityType    string  `gorm:"not null" json:"activity_type"`
	DurationMinutes float64 `json:"duration_minutes"`
	Intensity       string  `json:"intensity"` // "low"|"moderate"|"high"
	CaloriesBurnt   float64 `json:"calories_burnt"`
	METValue        float64 `json:"met_value"`

	Transcript   string `json:"transcript,omitempty"`
	RecordingURL string `json:"recording_url,omitempty"`
}
