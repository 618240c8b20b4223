package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// ErrNothingRecognized is returned when a transcript yields neither food nor
// workout mentions. It is the only recoverable condition this pipeline
// surfaces; callers should prompt for a re-recording.
var ErrNothingRecognized = errors.New("nothing recognized in transcript")

// defaultBodyWeightKg is used when the user has no weight on file.
const defaultBodyWeightKg = 70.0

// LogService runs the whole pipeline: extract mentions from a transcript,
// resolve nutrients and energy, check for duplicates, persist, broadcast.
type LogService struct {
	db        *gorm.DB
	foods     *FoodParser
	workouts  *WorkoutParser
	nutrition *NutritionService
	energy    *EnergyService
	dups      *DuplicateService
	hub       *RealtimeHub
}

func NewLogService(db *gorm.DB, foods *FoodParser, workouts *WorkoutParser, nutrition *NutritionService, energy *EnergyService, dups *DuplicateService, hub *RealtimeHub) *LogService {
	return &LogService{
		db:        db,
		foods:     foods,
		workouts:  workouts,
		nutrition: nutrition,
		energy:    energy,
		dups:      dups,
		hub:       hub,
	}
}

type LogRequest struct {
	Transcript        string
	RecordingURL      string
	ConfirmDuplicates bool
	When              time.Time // zero means now
}

// LogResult carries the built entries plus any duplicate warnings. Persisted
// is false when warnings were raised and the caller has not confirmed; the
// entries are then returned unsaved for review.
type LogResult struct {
	FoodEntries     []models.FoodLogEntry     `json:"food_entries"`
	WorkoutEntries  []models.WorkoutLogEntry  `json:"workout_entries"`
	FoodWarnings    []models.DuplicateWarning `json:"food_warnings,omitempty"`
	WorkoutWarnings []models.DuplicateWarning `json:"workout_warnings,omitempty"`
	Persisted       bool                      `json:"persisted"`
}

func (s *LogService) LogTranscript(ctx context.Context, user models.User, req LogRequest) (*LogResult, error) {
	foodMentions := s.foods.Extract(req.Transcript)
	workoutMentions := s.workouts.Extract(req.Transcript)
	if len(foodMentions) == 0 && len(workoutMentions) == 0 {
		return nil, ErrNothingRecognized
	}

	when := req.When
	if when.IsZero() {
		when = time.Now()
	}

	weight := user.WeightKg
	if weight <= 0 {
		weight = defaultBodyWeightKg
	}

	res := &LogResult{}
	for _, m := range foodMentions {
		entry := models.FoodLogEntry{
			UserID:       user.ID,
			Timestamp:    when,
			FoodName:     m.FoodName,
			Quantity:     m.Quantity,
			Unit:         m.Unit,
			Transcript:   req.Transcript,
			RecordingURL: req.RecordingURL,
		}
		// A lexicon miss still saves the mention, zero-valued and flagged
		// for manual correction.
		if n, ok := s.nutrition.Resolve(m.FoodName, m.Quantity, m.Unit); ok {
			entry.FoodName = n.Name
			entry.Calories = n.Calories
			entry.Protein = n.Protein
			entry.Carbs = n.Carbs
			entry.Fats = n.Fats
			entry.Fiber = n.Fiber
			entry.Sugar = n.Sugar
			entry.Sodium = n.Sodium
		} else {
			entry.NeedsReview = true
		}
		res.FoodEntries = append(res.FoodEntries, entry)
	}

	for _, m := range workoutMentions {
		calories, met := s.energy.Calculate(m.ActivityType, m.DurationMinutes, m.Intensity, weight)
		res.WorkoutEntries = append(res.WorkoutEntries, models.WorkoutLogEntry{
			UserID:          user.ID,
			Timestamp:       when,
			ActivityType:    m.ActivityType,
			DurationMinutes: m.DurationMinutes,
			Intensity:       m.Intensity,
			CaloriesBurnt:   calories,
			METValue:        met,
			Transcript:      req.Transcript,
			RecordingURL:    req.RecordingURL,
		})
	}

	recentFoods, err := s.dups.RecentFoodEntries(user.ID, DefaultDuplicateWindow)
	if err != nil {
		return nil, err
	}
	recentWorkouts, err := s.dups.RecentWorkoutEntries(user.ID, DefaultDuplicateWindow)
	if err != nil {
		return nil, err
	}
	res.FoodWarnings = CheckFoodDuplicates(foodMentions, recentFoods)
	res.WorkoutWarnings = CheckWorkoutDuplicates(workoutMentions, recentWorkouts)

	if (len(res.FoodWarnings) > 0 || len(res.WorkoutWarnings) > 0) && !req.ConfirmDuplicates {
		return res, nil
	}

	if err := s.persist(ctx, res); err != nil {
		return nil, err
	}
	res.Persisted = true
	s.broadcast(user.ID, res)
	return res, nil
}

func (s *LogService) persist(ctx context.Context, res *LogResult) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range res.FoodEntries {
			if err := tx.Create(&res.FoodEntries[i]).Error; err != nil {
				return err
			}
		}
		for i := range res.WorkoutEntries {
			if err := tx.Create(&res.WorkoutEntries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// broadcast pushes the persisted entries to the user's live clients.
func (s *LogService) broadcast(userID uint, res *LogResult) {
	if s.hub == nil {
		return
	}
	for _, e := range res.FoodEntries {
		s.hub.BroadcastEntry(userID, EntryEvent{Type: "food_entry", Action: "created", Payload: e})
	}
	for _, e := range res.WorkoutEntries {
		s.hub.BroadcastEntry(userID, EntryEvent{Type: "workout_entry", Action: "created", Payload: e})
	}
}

// ListFoodEntries returns the user's food log newest-first.
func (s *LogService) ListFoodEntries(ctx context.Context, userID uint) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

// ListWorkoutEntries returns the user's workout log newest-first.
func (s *LogService) ListWorkoutEntries(ctx context.Context, userID uint) ([]models.WorkoutLogEntry, error) {
	var entries []models.WorkoutLogEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

// DeleteFoodEntry removes one entry; entries are otherwise immutable.
func (s *LogService) DeleteFoodEntry(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.FoodLogEntry{}, entryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if s.hub != nil {
		s.hub.BroadcastEntry(userID, EntryEvent{Type: "food_entry", Action: "deleted", Payload: entryID})
	}
	return nil
}

// DeleteWorkoutEntry removes one workout entry.
func (s *LogService) DeleteWorkoutEntry(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WorkoutLogEntry{}, entryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if s.hub != nil {
		s.hub.BroadcastEntry(userID, EntryEvent{Type: "workout_entry", Action: "deleted", Payload: entryID})
	}
	return nil
}
