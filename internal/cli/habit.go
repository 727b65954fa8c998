package cli

import (
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit for today."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit completed."`
	Undo   HabitUndoCmd   `cmd:"" help:"Mark a habit not completed."`
	Edit   HabitEditCmd   `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Text string `arg:"" help:"Habit label."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)
	habit, err := habits.Add(c.Text)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (%s)\n", habit.Text, habit.ID)
	return nil
}

type HabitListCmd struct {
	Date string `help:"Only show habits for a date (YYYY-MM-DD)."`
	All  bool   `help:"Show the full habit history."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)

	date := c.Date
	if date == "" && !c.All {
		date = utils.Today()
	}
	if date != "" && !utils.ValidDate(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	var entries []models.HabitEntry
	var err error
	if date != "" {
		entries, err = habits.ForDate(date)
	} else {
		entries, err = habits.All()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range entries {
		mark := "[ ]"
		if habit.IsCompleted {
			mark = "[x]"
		}
		fmt.Printf("%s %s  %s  (%s)\n", mark, habit.CreatedAt, habit.Text, habit.ID)
	}
	return nil
}

type HabitDoneCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)
	if err := habits.SetCompleted(c.ID, true); err != nil {
		return err
	}
	fmt.Println("Habit marked completed.")
	return nil
}

type HabitUndoCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitUndoCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)
	if err := habits.SetCompleted(c.ID, false); err != nil {
		return err
	}
	fmt.Println("Habit marked not completed.")
	return nil
}

type HabitEditCmd struct {
	ID   string `arg:"" help:"Habit id."`
	Text string `arg:"" help:"New label."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)
	if err := habits.Rename(c.ID, c.Text); err != nil {
		return err
	}
	fmt.Println("Habit updated.")
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habits := repo.NewHabits(ctx.Store)
	if err := habits.Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Habit deleted.")
	return nil
}
