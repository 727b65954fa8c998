package tui

import (
	"fmt"
	"strings"

	"github.com/BinadaPasandul/pulse/internal/stats"
)

// sparkline levels from empty to full, used for the weekly trend row.
var sparks = []rune("▁▂▃▄▅▆▇█")

func (m Model) View() string {
	if m.state == stateMoodForm || m.state == stateHabitForm {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Pulse · wellness dashboard"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Today's habits"))
	b.WriteString("\n")
	if len(m.todayHabits) == 0 {
		b.WriteString(dimStyle.Render("  nothing yet, press a to add one"))
		b.WriteString("\n")
	}
	for i, habit := range m.todayHabits {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if habit.IsCompleted {
			mark = goodStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, habit.Text))
	}

	b.WriteString(sectionStyle.Render("Water"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d glasses", waterGauge(m.waterTotal, m.waterGoal), m.waterTotal, m.waterGoal))
	if m.streak > 0 {
		b.WriteString(goodStyle.Render(fmt.Sprintf("   %d day streak 🔥", m.streak)))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Mood"))
	b.WriteString("\n")
	if m.latestMood != nil {
		b.WriteString(fmt.Sprintf("  %s %s at %s\n", m.latestMood.Emoji, m.latestMood.Mood, m.latestMood.Time))
	} else {
		b.WriteString(dimStyle.Render("  not recorded today, press m"))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Wellness"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  score %d/100   week %s\n", m.score, sparkline(m.trends)))

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func waterGauge(current, goal int) string {
	const width = 10
	if goal <= 0 {
		goal = 1
	}
	filled := current * width / goal
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func sparkline(values []stats.DayValue) string {
	var b strings.Builder
	for _, v := range values {
		idx := v.Value * (len(sparks) - 1) / 100
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparks) {
			idx = len(sparks) - 1
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}
