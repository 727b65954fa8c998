// Package stats derives display statistics from repository queries. The
// engine holds no state of its own; every value is recomputed from the
// store on each call.
package stats

import (
	"math"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/storage"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

// DayValue pairs a date with a computed integer statistic. Weekly series
// are ordered oldest first, today last.
type DayValue struct {
	Date  string
	Value int
}

// DayMood pairs a date with the prevailing mood label for that day.
type DayMood struct {
	Date string
	Mood string
}

type Engine struct {
	store  storage.Provider
	habits *repo.Habits
	moods  *repo.Moods
	water  *repo.Water
}

func New(store storage.Provider) *Engine {
	return &Engine{
		store:  store,
		habits: repo.NewHabits(store),
		moods:  repo.NewMoods(store),
		water:  repo.NewWater(store),
	}
}

// DailyHabitCompletion returns the rounded percentage of the day's habits
// that are completed. An empty day yields 0, never a division by zero.
func (e *Engine) DailyHabitCompletion(date string) (int, error) {
	habits, err := e.habits.ForDate(date)
	if err != nil {
		return 0, err
	}
	if len(habits) == 0 {
		return 0, nil
	}

	completed := 0
	for _, habit := range habits {
		if habit.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(habits)) * 100)), nil
}

// WeeklyHabitCompletion returns the completion percentage for each of the
// trailing 7 days.
func (e *Engine) WeeklyHabitCompletion() ([]DayValue, error) {
	week := make([]DayValue, 0, constants.TrailingWeekDays)
	for _, date := range utils.TrailingDays(constants.TrailingWeekDays) {
		percent, err := e.DailyHabitCompletion(date)
		if err != nil {
			return nil, err
		}
		week = append(week, DayValue{Date: date, Value: percent})
	}
	return week, nil
}

// TodayLatestMood returns today's most recent mood entry, or nil when no
// mood has been recorded today.
func (e *Engine) TodayLatestMood() (*models.MoodEntry, error) {
	return e.moods.LatestForDate(utils.Today())
}

// WeeklyMoodSummary returns the latest mood label per trailing day, with
// "No mood" standing in for days without entries.
func (e *Engine) WeeklyMoodSummary() ([]DayMood, error) {
	week := make([]DayMood, 0, constants.TrailingWeekDays)
	for _, date := range utils.TrailingDays(constants.TrailingWeekDays) {
		latest, err := e.moods.LatestForDate(date)
		if err != nil {
			return nil, err
		}
		label := "No mood"
		if latest != nil {
			label = latest.Mood
		}
		week = append(week, DayMood{Date: date, Mood: label})
	}
	return week, nil
}

// dayWaterTotal resolves a day's consumption with the snapshot asymmetry
// the stored data requires: today reads the last-inserted running total,
// historical days sum their rows.
func (e *Engine) dayWaterTotal(date string) (int, error) {
	if date == utils.Today() {
		return e.water.TodayTotal()
	}
	return e.water.TotalForDay(date)
}

// WeeklyWaterConsumption returns glasses per trailing day.
func (e *Engine) WeeklyWaterConsumption() ([]DayValue, error) {
	week := make([]DayValue, 0, constants.TrailingWeekDays)
	for _, date := range utils.TrailingDays(constants.TrailingWeekDays) {
		total, err := e.dayWaterTotal(date)
		if err != nil {
			return nil, err
		}
		week = append(week, DayValue{Date: date, Value: total})
	}
	return week, nil
}

// WaterStreak counts consecutive days ending today whose consumption met
// the daily goal, stopping at the first day that falls short, today
// included. The walk is capped so corrupted histories cannot loop forever.
func (e *Engine) WaterStreak() (int, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return 0, err
	}
	goal := settings.DailyWaterGoal

	streak := 0
	for i := 0; i < constants.MaxStreakDays; i++ {
		total, err := e.dayWaterTotal(utils.DaysAgo(i))
		if err != nil {
			return 0, err
		}
		if total < goal {
			break
		}
		streak++
	}
	return streak, nil
}

// moodComponent maps a mood label onto its wellness score contribution.
// Unknown labels and absent moods both score as "other".
func moodComponent(mood string) int {
	switch mood {
	case constants.MoodHappy, constants.MoodExcited, constants.MoodGrateful, constants.MoodPeaceful:
		return 30
	case constants.MoodNeutral:
		return 20
	default:
		return 10
	}
}

// scoreForDay computes the wellness score for one day:
// floor(habit% * 0.4) + water component (30 cap) + mood component.
// The result is typically <= 100 but not strictly bounded by construction,
// since the habit term can round up before the 0.4 weighting.
func (e *Engine) scoreForDay(date string, goal int) (int, error) {
	habitPercent, err := e.DailyHabitCompletion(date)
	if err != nil {
		return 0, err
	}
	habitScore := int(float64(habitPercent) * 0.4)

	total, err := e.dayWaterTotal(date)
	if err != nil {
		return 0, err
	}
	waterScore := 0
	if goal > 0 {
		if total >= goal {
			waterScore = 30
		} else {
			waterScore = int(float64(total) / float64(goal) * 30)
		}
	}

	latest, err := e.moods.LatestForDate(date)
	if err != nil {
		return 0, err
	}
	mood := ""
	if latest != nil {
		mood = latest.Mood
	}

	return habitScore + waterScore + moodComponent(mood), nil
}

// TodayWellnessScore computes the composite score for today.
func (e *Engine) TodayWellnessScore() (int, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return 0, err
	}
	return e.scoreForDay(utils.Today(), settings.DailyWaterGoal)
}

// WeeklyWellnessTrends returns the wellness score per trailing day.
func (e *Engine) WeeklyWellnessTrends() ([]DayValue, error) {
	settings, err := e.store.GetSettings()
	if err != nil {
		return nil, err
	}

	week := make([]DayValue, 0, constants.TrailingWeekDays)
	for _, date := range utils.TrailingDays(constants.TrailingWeekDays) {
		score, err := e.scoreForDay(date, settings.DailyWaterGoal)
		if err != nil {
			return nil, err
		}
		week = append(week, DayValue{Date: date, Value: score})
	}
	return week, nil
}
