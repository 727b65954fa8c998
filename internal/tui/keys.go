package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	AddWater    key.Binding
	RemoveWater key.Binding
	AddMood     key.Binding
	AddHabit    key.Binding
	Toggle      key.Binding
	Up          key.Binding
	Down        key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

// ShortHelp satisfies help.KeyMap for the dashboard footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddWater, k.RemoveWater, k.AddMood, k.AddHabit, k.Toggle, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddWater, k.RemoveWater, k.AddMood, k.AddHabit},
		{k.Toggle, k.Up, k.Down, k.Refresh, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddWater: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "add glass"),
		),
		RemoveWater: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "remove glass"),
		),
		AddMood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "record mood"),
		),
		AddHabit: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle habit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
