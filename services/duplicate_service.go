package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// DefaultDuplicateWindow is how far back the recent-entries window reaches
// when the caller does not override it.
const DefaultDuplicateWindow = 30 * time.Minute

// foodQuantityTolerance: quantities within 20% of each other count as the
// same amount. workoutDurationTolerance is in minutes.
const (
	foodQuantityTolerance    = 0.2
	workoutDurationTolerance = 10.0
)

// DuplicateService flags freshly extracted mentions that look like re-logs
// of recently persisted entries. Warnings are advisory; the caller decides
// whether to persist anyway.
type DuplicateService struct {
	db *gorm.DB
}

func NewDuplicateService(db *gorm.DB) *DuplicateService {
	return &DuplicateService{db: db}
}

// CheckFoodDuplicates matches each candidate against the supplied recent
// window: case-insensitive name equality and a quantity within 20%. The
// first matching entry per candidate is reported.
func CheckFoodDuplicates(candidates []models.FoodMention, recent []models.FoodLogEntry) []models.DuplicateWarning {
	var warnings []models.DuplicateWarning
	for i, c := range candidates {
		for _, e := range recent {
			if !strings.EqualFold(e.FoodName, c.FoodName) {
				continue
			}
			if !quantitiesMatch(e.Quantity, c.Quantity) {
				continue
			}
			warnings = append(warnings, models.DuplicateWarning{
				CandidateIndex: i,
				MatchedEntryID: e.ID,
				Message: fmt.Sprintf("Similar entry found: %s (%g %s) at %s",
					e.FoodName, e.Quantity, e.Unit, e.Timestamp.Format("15:04")),
			})
			break
		}
	}
	return warnings
}

// CheckWorkoutDuplicates matches on case-insensitive activity type and a
// duration within 10 minutes.
func CheckWorkoutDuplicates(candidates []models.WorkoutMention, recent []models.WorkoutLogEntry) []models.DuplicateWarning {
	var warnings []models.DuplicateWarning
	for i, c := range candidates {
		for _, e := range recent {
			if !strings.EqualFold(e.ActivityType, c.ActivityType) {
				continue
			}
			if math.Abs(e.DurationMinutes-c.DurationMinutes) >= workoutDurationTolerance {
				continue
			}
			warnings = append(warnings, models.DuplicateWarning{
				CandidateIndex: i,
				MatchedEntryID: e.ID,
				Message: fmt.Sprintf("Similar workout found: %s (%.0f min) at %s",
					e.ActivityType, e.DurationMinutes, e.Timestamp.Format("15:04")),
			})
			break
		}
	}
	return warnings
}

func quantitiesMatch(existing, candidate float64) bool {
	larger := math.Max(existing, candidate)
	if larger <= 0 {
		return true
	}
	return math.Abs(existing-candidate)/larger < foodQuantityTolerance
}

// RecentFoodEntries returns the user's food entries persisted within the
// window before now.
func (s *DuplicateService) RecentFoodEntries(userID uint, window time.Duration) ([]models.FoodLogEntry, error) {
	cutoff := time.Now().Add(-window)
	var entries []models.FoodLogEntry
	err := s.db.
		Where("user_id = ? AND timestamp >= ?", userID, cutoff).
		Find(&entries).Error
	return entries, err
}

// RecentWorkoutEntries returns the user's workout entries persisted within
// the window before now.
func (s *DuplicateService) RecentWorkoutEntries(userID uint, window time.Duration) ([]models.WorkoutLogEntry, error) {
	cutoff := time.Now().Add(-window)
	var entries []models.WorkoutLogEntry
	err := s.db.
		Where("user_id = ? AND timestamp >= ?", userID, cutoff).
		Find(&entries).Error
	return entries, err
}
