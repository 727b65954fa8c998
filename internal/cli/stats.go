package cli

import (
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/stats"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

type StatsCmd struct {
	Week bool `help:"Show trailing 7-day rollups instead of today's summary."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	engine := stats.New(ctx.Store)

	if c.Week {
		return c.week(engine)
	}
	return c.today(ctx, engine)
}

func (c *StatsCmd) today(ctx *Context, engine *stats.Engine) error {
	today := utils.Today()

	habitPercent, err := engine.DailyHabitCompletion(today)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	consumption, err := engine.WeeklyWaterConsumption()
	if err != nil {
		return err
	}
	todayWater := consumption[len(consumption)-1].Value

	mood, err := engine.TodayLatestMood()
	if err != nil {
		return err
	}

	score, err := engine.TodayWellnessScore()
	if err != nil {
		return err
	}

	fmt.Printf("Today (%s)\n", today)
	fmt.Printf("  Habits:    %d%% complete\n", habitPercent)
	fmt.Printf("  Water:     %s\n", FormatGlasses(todayWater, settings.DailyWaterGoal))
	if mood != nil {
		fmt.Printf("  Mood:      %s %s (%s)\n", mood.Emoji, mood.Mood, mood.Time)
	} else {
		fmt.Printf("  Mood:      not recorded\n")
	}
	fmt.Printf("  Wellness:  %d/100\n", score)
	return nil
}

func (c *StatsCmd) week(engine *stats.Engine) error {
	habits, err := engine.WeeklyHabitCompletion()
	if err != nil {
		return err
	}
	water, err := engine.WeeklyWaterConsumption()
	if err != nil {
		return err
	}
	moods, err := engine.WeeklyMoodSummary()
	if err != nil {
		return err
	}
	trends, err := engine.WeeklyWellnessTrends()
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %8s %8s %10s  %s\n", "Date", "Habits", "Water", "Wellness", "Mood")
	for i := range trends {
		fmt.Printf("%-12s %7d%% %8d %10d  %s\n",
			trends[i].Date, habits[i].Value, water[i].Value, trends[i].Value, moods[i].Mood)
	}
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	engine := stats.New(ctx.Store)
	streak, err := engine.WaterStreak()
	if err != nil {
		return err
	}

	switch streak {
	case 0:
		fmt.Println("No active streak. Today's goal is still open!")
	case 1:
		fmt.Println("Streak: 1 day 🔥")
	default:
		fmt.Printf("Streak: %d days 🔥\n", streak)
	}
	return nil
}

type ScoreCmd struct{}

func (c *ScoreCmd) Run(ctx *Context) error {
	engine := stats.New(ctx.Store)
	score, err := engine.TodayWellnessScore()
	if err != nil {
		return err
	}
	fmt.Printf("Wellness score: %d/100\n", score)
	return nil
}
