package terminal

import (
	"github.com/charmbracelet/bubbles/key"

	"steadystate/internal/i18n"
)

type keyMap struct {
	Toggle       key.Binding
	Reset        key.Binding
	Focus        key.Binding
	ShortBreak   key.Binding
	LongBreak    key.Binding
	Background   key.Binding
	Language     key.Binding
	Achievements key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap(translator *i18n.Translator) keyMap {
	return keyMap{
		Toggle:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", translator.T("helpToggle"))),
		Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", translator.T("helpReset"))),
		Focus:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", translator.T("helpModes"))),
		ShortBreak:   key.NewBinding(key.WithKeys("2")),
		LongBreak:    key.NewBinding(key.WithKeys("3")),
		Background:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", translator.T("helpBackground"))),
		Language:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", translator.T("helpLanguage"))),
		Achievements: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", translator.T("helpAchievements"))),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", translator.T("helpHelp"))),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", translator.T("helpQuit"))),
	}
}

// ShortHelp implements help.KeyMap.
func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Reset, keys.Focus, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Toggle, keys.Reset, keys.Focus},
		{keys.Background, keys.Language, keys.Achievements},
		{keys.Help, keys.Quit},
	}
}
