package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

func foodAt(at time.Time, calories, protein float64) models.FoodLogEntry {
	return models.FoodLogEntry{Timestamp: at, Calories: calories, Protein: protein}
}

func workoutAt(at time.Time, burnt float64) models.WorkoutLogEntry {
	return models.WorkoutLogEntry{Timestamp: at, CaloriesBurnt: burnt}
}

func TestSummarizeDayTotalsAndNet(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	foods := []models.FoodLogEntry{
		foodAt(day.Add(8*time.Hour), 350, 12),
		foodAt(day.Add(13*time.Hour), 600, 25),
		foodAt(day.Add(20*time.Hour), 450, 18),
	}
	workouts := []models.WorkoutLogEntry{
		workoutAt(day.Add(7*time.Hour), 300),
		workoutAt(day.Add(18*time.Hour), 150),
	}

	s := SummarizeDay(day.Add(10*time.Hour), foods, workouts)

	assert.Equal(t, day, s.Date)
	assert.InDelta(t, 1400, s.TotalCaloriesConsumed, 1e-9)
	assert.InDelta(t, 450, s.TotalCaloriesBurnt, 1e-9)
	assert.InDelta(t, 950, s.NetCalories, 1e-9)
	assert.InDelta(t, 55, s.TotalProtein, 1e-9)
	assert.Equal(t, 3, s.FoodEntryCount)
	assert.Equal(t, 2, s.WorkoutCount)
}

func TestSummarizeDayIgnoresOtherDays(t *testing.T) {
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	foods := []models.FoodLogEntry{
		foodAt(day.Add(-time.Minute), 100, 0), // previous day
		foodAt(day, 200, 0),                   // midnight, inclusive
		foodAt(day.Add(24*time.Hour), 400, 0), // next midnight, exclusive
		foodAt(day.Add(23*time.Hour+59*time.Minute), 300, 0),
	}

	s := SummarizeDay(day, foods, nil)
	assert.InDelta(t, 500, s.TotalCaloriesConsumed, 1e-9)
	assert.Equal(t, 2, s.FoodEntryCount)
}

func TestSummarizeDayEmpty(t *testing.T) {
	s := SummarizeDay(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), nil, nil)
	assert.Zero(t, s.TotalCaloriesConsumed)
	assert.Zero(t, s.TotalCaloriesBurnt)
	assert.Zero(t, s.NetCalories)
	assert.Zero(t, s.FoodEntryCount)
	assert.Zero(t, s.WorkoutCount)
}

func TestSummarizePeriodAveragesAreExactMeans(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2) // three days

	foods := []models.FoodLogEntry{
		foodAt(start.Add(9*time.Hour), 1800, 60),
		foodAt(start.AddDate(0, 0, 1).Add(9*time.Hour), 2100, 80),
		foodAt(start.AddDate(0, 0, 2).Add(9*time.Hour), 1500, 40),
	}
	workouts := []models.WorkoutLogEntry{
		workoutAt(start.Add(7*time.Hour), 300),
		workoutAt(start.AddDate(0, 0, 2).Add(7*time.Hour), 600),
	}

	s := SummarizePeriod(models.PeriodCustom, start, end, foods, workouts)

	require.Len(t, s.DailySummaries, 3)
	assert.Equal(t, models.PeriodCustom, s.Period)
	assert.InDelta(t, 1800, s.AverageCaloriesConsumed, 1e-9)
	assert.InDelta(t, 300, s.AverageCaloriesBurnt, 1e-9)
	assert.InDelta(t, 1500, s.AverageNetCalories, 1e-9)
	assert.InDelta(t, 60, s.AverageProtein, 1e-9)
	assert.Equal(t, 2, s.TotalWorkouts)
	assert.Equal(t, 3, s.TotalFoodEntries)

	// Average net equals average consumed minus average burnt.
	assert.InDelta(t, s.AverageCaloriesConsumed-s.AverageCaloriesBurnt, s.AverageNetCalories, 1e-9)
}

func TestSummarizePeriodCountsEmptyDays(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3) // four days, entries on one

	foods := []models.FoodLogEntry{foodAt(start.Add(9*time.Hour), 2000, 0)}

	s := SummarizePeriod(models.PeriodCustom, start, end, foods, nil)
	require.Len(t, s.DailySummaries, 4)
	assert.InDelta(t, 500, s.AverageCaloriesConsumed, 1e-9)
	assert.Equal(t, 1, s.TotalFoodEntries)
}

func TestSummarizePeriodEmptyRange(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	s := SummarizePeriod(models.PeriodCustom, start, end, nil, nil)
	assert.Empty(t, s.DailySummaries)
	assert.Zero(t, s.AverageCaloriesConsumed)
	assert.Zero(t, s.AverageNetCalories)
	assert.Zero(t, s.TotalFoodEntries)
}

func TestWeekBounds(t *testing.T) {
	svc := NewStatsService(nil)

	// 2026-08-26 is a Wednesday; Monday-start week.
	start, end := svc.WeekBounds(time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), end)

	// A Monday is its own week start.
	start, end = svc.WeekBounds(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), end)

	svc.SetWeekStart(time.Sunday)
	start, end = svc.WeekBounds(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	start, end = MonthBounds(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), end)
}
