package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/BinadaPasandul/pulse/internal/constants"
	"github.com/BinadaPasandul/pulse/internal/models"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/stats"
	"github.com/BinadaPasandul/pulse/internal/storage"
	"github.com/BinadaPasandul/pulse/internal/utils"
)

type sessionState int

const (
	stateDashboard sessionState = iota
	stateMoodForm
	stateHabitForm
)

type Model struct {
	store  storage.Provider
	habits *repo.Habits
	moods  *repo.Moods
	water  *repo.Water
	engine *stats.Engine

	state  sessionState
	keys   KeyMap
	help   help.Model
	width  int
	height int
	cursor int
	err    error

	// dashboard data, reloaded after every mutation
	todayHabits []models.HabitEntry
	waterTotal  int
	waterGoal   int
	latestMood  *models.MoodEntry
	score       int
	streak      int
	trends      []stats.DayValue

	form     *huh.Form
	moodPick string
	habitTxt string
}

func NewModel(store storage.Provider) Model {
	return Model{
		store:  store,
		habits: repo.NewHabits(store),
		moods:  repo.NewMoods(store),
		water:  repo.NewWater(store),
		engine: stats.New(store),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

type dashboardDataMsg struct {
	todayHabits []models.HabitEntry
	waterTotal  int
	waterGoal   int
	latestMood  *models.MoodEntry
	score       int
	streak      int
	trends      []stats.DayValue
	err         error
}

func (m Model) loadData() tea.Cmd {
	return func() tea.Msg {
		var msg dashboardDataMsg

		settings, err := m.store.GetSettings()
		if err != nil {
			msg.err = err
			return msg
		}
		msg.waterGoal = settings.DailyWaterGoal

		if msg.todayHabits, err = m.habits.ForDate(utils.Today()); err != nil {
			msg.err = err
			return msg
		}
		if msg.waterTotal, err = m.water.TodayTotal(); err != nil {
			msg.err = err
			return msg
		}
		if msg.latestMood, err = m.engine.TodayLatestMood(); err != nil {
			msg.err = err
			return msg
		}
		if msg.score, err = m.engine.TodayWellnessScore(); err != nil {
			msg.err = err
			return msg
		}
		if msg.streak, err = m.engine.WaterStreak(); err != nil {
			msg.err = err
			return msg
		}
		if msg.trends, err = m.engine.WeeklyWellnessTrends(); err != nil {
			msg.err = err
			return msg
		}
		return msg
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadData()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardDataMsg:
		m.err = msg.err
		if msg.err == nil {
			m.todayHabits = msg.todayHabits
			m.waterTotal = msg.waterTotal
			m.waterGoal = msg.waterGoal
			m.latestMood = msg.latestMood
			m.score = msg.score
			m.streak = msg.streak
			m.trends = msg.trends
			if m.cursor >= len(m.todayHabits) {
				m.cursor = 0
			}
		}
		return m, nil
	}

	switch m.state {
	case stateMoodForm, stateHabitForm:
		return m.updateForm(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Refresh):
		return m, m.loadData()

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.todayHabits)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.cursor < len(m.todayHabits) {
			habit := m.todayHabits[m.cursor]
			if err := m.habits.SetCompleted(habit.ID, !habit.IsCompleted); err != nil {
				m.err = err
				return m, nil
			}
		}
		return m, m.loadData()

	case key.Matches(keyMsg, m.keys.AddWater):
		if _, err := m.water.AddGlass(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.loadData()

	case key.Matches(keyMsg, m.keys.RemoveWater):
		if _, err := m.water.RemoveGlass(); err != nil && !errors.Is(err, repo.ErrNothingToRemove) {
			m.err = err
			return m, nil
		}
		return m, m.loadData()

	case key.Matches(keyMsg, m.keys.AddMood):
		m.state = stateMoodForm
		m.moodPick = ""
		m.form = newMoodForm(&m.moodPick)
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.AddHabit):
		m.state = stateHabitForm
		m.habitTxt = ""
		m.form = newHabitForm(&m.habitTxt)
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = stateDashboard
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		state := m.state
		m.state = stateDashboard
		m.form = nil

		switch state {
		case stateMoodForm:
			if m.moodPick != "" {
				emoji := constants.MoodEmojis[m.moodPick]
				if _, err := m.moods.Add(emoji, m.moodPick, ""); err != nil {
					m.err = err
					return m, nil
				}
			}
		case stateHabitForm:
			if m.habitTxt != "" {
				if _, err := m.habits.Add(m.habitTxt); err != nil {
					m.err = err
					return m, nil
				}
			}
		}
		return m, m.loadData()
	}

	return m, cmd
}

func newMoodForm(value *string) *huh.Form {
	options := make([]huh.Option[string], len(constants.MoodLabels))
	for i, label := range constants.MoodLabels {
		options[i] = huh.NewOption(constants.MoodEmojis[label]+" "+label, label)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(options...).
				Value(value),
		),
	)
}

func newHabitForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New habit").
				Placeholder("Drink water after waking up").
				Value(value),
		),
	)
}
