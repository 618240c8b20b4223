package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// StatsService reduces persisted entries into daily and period summaries.
// The reductions themselves (SummarizeDay, SummarizePeriod) are pure
// functions over entry slices; the service methods only add the database
// reads around them.
type StatsService struct {
	db        *gorm.DB
	weekStart time.Weekday
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db, weekStart: time.Monday}
}

// SetWeekStart changes which weekday opens a weekly summary window.
func (s *StatsService) SetWeekStart(d time.Weekday) { s.weekStart = d }

// SummarizeDay reduces the entries falling within [startOfDay, +24h) of date
// into a DailySummary. Entries outside that window are ignored.
func SummarizeDay(date time.Time, foods []models.FoodLogEntry, workouts []models.WorkoutLogEntry) models.DailySummary {
	start := dayStart(date)
	end := start.AddDate(0, 0, 1)

	out := models.DailySummary{Date: start}
	for _, f := range foods {
		if f.Timestamp.Before(start) || !f.Timestamp.Before(end) {
			continue
		}
		out.TotalCaloriesConsumed += f.Calories
		out.TotalProtein += f.Protein
		out.TotalCarbs += f.Carbs
		out.TotalFats += f.Fats
		out.TotalFiber += f.Fiber
		out.TotalSugar += f.Sugar
		out.TotalSodium += f.Sodium
		out.FoodEntryCount++
	}
	for _, w := range workouts {
		if w.Timestamp.Before(start) || !w.Timestamp.Before(end) {
			continue
		}
		out.TotalCaloriesBurnt += w.CaloriesBurnt
		out.WorkoutCount++
	}
	out.NetCalories = out.TotalCaloriesConsumed - out.TotalCaloriesBurnt
	return out
}

// SummarizePeriod walks every calendar day in [start, end] inclusive,
// summarizes each, and derives period averages and totals. An empty range
// (end before start) yields an all-zero summary instead of dividing by zero.
func SummarizePeriod(period string, start, end time.Time, foods []models.FoodLogEntry, workouts []models.WorkoutLogEntry) models.PeriodSummary {
	out := models.PeriodSummary{
		Period:    period,
		StartDate: dayStart(start),
		EndDate:   dayStart(end),
	}

	for d := dayStart(start); !d.After(dayStart(end)); d = d.AddDate(0, 0, 1) {
		out.DailySummaries = append(out.DailySummaries, SummarizeDay(d, foods, workouts))
	}

	n := len(out.DailySummaries)
	if n == 0 {
		return out
	}

	for _, ds := range out.DailySummaries {
		out.AverageCaloriesConsumed += ds.TotalCaloriesConsumed
		out.AverageCaloriesBurnt += ds.TotalCaloriesBurnt
		out.AverageNetCalories += ds.NetCalories
		out.AverageProtein += ds.TotalProtein
		out.AverageCarbs += ds.TotalCarbs
		out.AverageFats += ds.TotalFats
		out.AverageFiber += ds.TotalFiber
		out.AverageSugar += ds.TotalSugar
		out.AverageSodium += ds.TotalSodium
		out.TotalWorkouts += ds.WorkoutCount
		out.TotalFoodEntries += ds.FoodEntryCount
	}
	div := float64(n)
	out.AverageCaloriesConsumed /= div
	out.AverageCaloriesBurnt /= div
	out.AverageNetCalories /= div
	out.AverageProtein /= div
	out.AverageCarbs /= div
	out.AverageFats /= div
	out.AverageFiber /= div
	out.AverageSugar /= div
	out.AverageSodium /= div

	return out
}

// Daily returns the summary for one calendar day of one user.
func (s *StatsService) Daily(ctx context.Context, userID uint, date time.Time) (models.DailySummary, error) {
	foods, workouts, err := s.entriesInRange(ctx, userID, dayStart(date), dayStart(date).AddDate(0, 0, 1))
	if err != nil {
		return models.DailySummary{}, err
	}
	return SummarizeDay(date, foods, workouts), nil
}

// Period returns the summary over [start, end] inclusive.
func (s *StatsService) Period(ctx context.Context, userID uint, period string, start, end time.Time) (models.PeriodSummary, error) {
	foods, workouts, err := s.entriesInRange(ctx, userID, dayStart(start), dayStart(end).AddDate(0, 0, 1))
	if err != nil {
		return models.PeriodSummary{}, err
	}
	return SummarizePeriod(period, start, end, foods, workouts), nil
}

// Weekly summarizes the week containing ref, opening on the configured
// week-start day.
func (s *StatsService) Weekly(ctx context.Context, userID uint, ref time.Time) (models.PeriodSummary, error) {
	start, end := s.WeekBounds(ref)
	return s.Period(ctx, userID, models.PeriodWeekly, start, end)
}

// Monthly summarizes the calendar month containing ref.
func (s *StatsService) Monthly(ctx context.Context, userID uint, ref time.Time) (models.PeriodSummary, error) {
	start, end := MonthBounds(ref)
	return s.Period(ctx, userID, models.PeriodMonthly, start, end)
}

// Yearly summarizes the calendar year containing ref.
func (s *StatsService) Yearly(ctx context.Context, userID uint, ref time.Time) (models.PeriodSummary, error) {
	start, end := YearBounds(ref)
	return s.Period(ctx, userID, models.PeriodYearly, start, end)
}

// WeekBounds returns the first and last day of the week containing t.
func (s *StatsService) WeekBounds(t time.Time) (time.Time, time.Time) {
	back := (int(t.Weekday()) - int(s.weekStart) + 7) % 7
	start := dayStart(t).AddDate(0, 0, -back)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the calendar-true first and last day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, -1)
}

// YearBounds returns the first and last day of t's year.
func YearBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(1, 0, -1)
}

func (s *StatsService) entriesInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodLogEntry, []models.WorkoutLogEntry, error) {
	var foods []models.FoodLogEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&foods).Error; err != nil {
		return nil, nil, err
	}
	var workouts []models.WorkoutLogEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&workouts).Error; err != nil {
		return nil, nil, err
	}
	return foods, workouts, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
