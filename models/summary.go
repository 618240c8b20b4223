package models

import "time"

// Summary periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
	PeriodCustom  = "custom"
)

// DailySummary is derived from the entries of one calendar day; it is never
// persisted independently. NetCalories is always consumed minus burnt.
type DailySummary struct {
	Date                  time.Time `json:"date"`
	TotalCaloriesConsumed float64   `json:"total_calories_consumed"`
	TotalCaloriesBurnt    float64   `json:"total_calories_burnt"`
	NetCalories           float64   `json:"net_calories"`
	TotalProtein          float64   `json:"total_protein"`
	TotalCarbs            float64   `json:"total_carbs"`
	TotalFats             float64   `json:"total_fats"`
	TotalFiber            float64   `json:"total_fiber"`
	TotalSugar            float64   `json:"total_sugar"`
	TotalSodium           float64   `json:"total_sodium"`
	WorkoutCount          int       `json:"workout_count"`
	FoodEntryCount        int       `json:"food_entry_count"`
}

// PeriodSummary aggregates the daily summaries of an inclusive date range.
// Each average is the arithmetic mean of the matching field across
// DailySummaries; the totals are sums of the per-day counts.
type PeriodSummary struct {
	Period    string    `json:"period"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	AverageCaloriesConsumed float64 `json:"average_calories_consumed"`
	AverageCaloriesBurnt    float64 `json:"average_calories_burnt"`
	AverageNetCalories      float64 `json:"average_net_calories"`
	AverageProtein          float64 `json:"average_protein"`
	AverageCarbs            float64 `json:"average_carbs"`
	AverageFats             float64 `json:"average_fats"`
	AverageFiber            float64 `json:"average_fiber"`
	AverageSugar            float64 `json:"average_sugar"`
	AverageSodium           float64 `json:"average_sodium"`

	TotalWorkouts    int `json:"total_workouts"`
	TotalFoodEntries int `json:"total_food_entries"`

	DailySummaries []DailySummary `json:"daily_summaries"`
}
