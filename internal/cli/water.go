package cli

import (
	"errors"
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

type WaterCmd struct {
	Add    WaterAddCmd    `cmd:"" help:"Log one more glass of water."`
	Remove WaterRemoveCmd `cmd:"" help:"Remove a glass logged by mistake."`
	Status WaterStatusCmd `cmd:"" help:"Show today's progress toward the goal."`
	List   WaterListCmd   `cmd:"" help:"List water entries."`
	Goal   WaterGoalCmd   `cmd:"" help:"Show or set the daily water goal."`
}

type WaterAddCmd struct{}

func (c *WaterAddCmd) Run(ctx *Context) error {
	water := repo.NewWater(ctx.Store)
	entry, err := water.AddGlass()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Glass added: %s\n", FormatGlasses(entry.Glasses, settings.DailyWaterGoal))
	if entry.Glasses >= settings.DailyWaterGoal {
		fmt.Println("Daily goal reached! 🎉")
	}
	return nil
}

type WaterRemoveCmd struct{}

func (c *WaterRemoveCmd) Run(ctx *Context) error {
	water := repo.NewWater(ctx.Store)
	entry, err := water.RemoveGlass()
	if errors.Is(err, repo.ErrNothingToRemove) {
		fmt.Println("No glasses to remove.")
		return nil
	}
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("Glass removed: %s\n", FormatGlasses(entry.Glasses, settings.DailyWaterGoal))
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *Context) error {
	water := repo.NewWater(ctx.Store)
	total, err := water.TodayTotal()
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", ProgressBar(total, settings.DailyWaterGoal, 20),
		FormatGlasses(total, settings.DailyWaterGoal))
	return nil
}

type WaterListCmd struct {
	Date string `help:"Only show entries for a date (YYYY-MM-DD)."`
}

func (c *WaterListCmd) Run(ctx *Context) error {
	if c.Date != "" && !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}

	water := repo.NewWater(ctx.Store)
	var entries []models.WaterEntry
	var err error
	if c.Date != "" {
		entries, err = water.ForDate(c.Date)
	} else {
		entries, err = water.All()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No water entries found.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s %s  %d glasses  (%s)\n", entry.Date, entry.Time, entry.Glasses, entry.ID)
	}
	return nil
}

type WaterGoalCmd struct {
	Glasses *int `arg:"" optional:"" help:"New daily goal in glasses (1-20 suggested)."`
}

func (c *WaterGoalCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Glasses == nil {
		fmt.Printf("Daily water goal: %d glasses\n", settings.DailyWaterGoal)
		return nil
	}

	if *c.Glasses < constants.MinDailyWaterGoal || *c.Glasses > constants.MaxDailyWaterGoal {
		return fmt.Errorf("daily water goal must be between %d and %d glasses",
			constants.MinDailyWaterGoal, constants.MaxDailyWaterGoal)
	}
	settings.DailyWaterGoal = *c.Glasses
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Daily goal updated to %d glasses\n", settings.DailyWaterGoal)
	return nil
}
