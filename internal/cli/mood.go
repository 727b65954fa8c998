package cli

import (
	"fmt"
	"strings"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

type MoodCmd struct {
	Add    MoodAddCmd    `cmd:"" help:"Record how you're feeling."`
	List   MoodListCmd   `cmd:"" help:"List mood entries."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
}

type MoodAddCmd struct {
	Mood  string `arg:"" help:"Mood label (Happy, Excited, Neutral, Sad, Stressed, Grateful, Tired, Angry, Anxious, Peaceful)."`
	Notes string `help:"Optional notes."`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	// Normalize to the canonical casing when the label is known; unknown
	// labels are persisted as given and score as "other" moods.
	label := c.Mood
	for _, known := range constants.MoodLabels {
		if strings.EqualFold(known, label) {
			label = known
			break
		}
	}

	emoji := constants.MoodEmojis[label]
	if emoji == "" {
		emoji = "🙂"
	}

	moods := repo.NewMoods(ctx.Store)
	entry, err := moods.Add(emoji, label, c.Notes)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded mood: %s %s at %s\n", entry.Emoji, entry.Mood, entry.Time)
	return nil
}

type MoodListCmd struct {
	Date string `help:"Only show entries for a date (YYYY-MM-DD)."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	if c.Date != "" && !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}

	moods := repo.NewMoods(ctx.Store)
	var entries []models.MoodEntry
	var err error
	if c.Date != "" {
		entries, err = moods.ForDate(c.Date)
	} else {
		entries, err = moods.All()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries found.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s %s  %s %s  (%s)", entry.Date, entry.Time, entry.Emoji, entry.Mood, entry.ID)
		if entry.Notes != "" {
			line += "  - " + entry.Notes
		}
		fmt.Println(line)
	}
	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *Context) error {
	moods := repo.NewMoods(ctx.Store)
	if err := moods.Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Mood entry deleted.")
	return nil
}
