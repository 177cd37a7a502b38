// Package terminal is the bubbletea front end.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"steadystate/internal/core/achievements"
	"steadystate/internal/core/appearance"
	"steadystate/internal/core/model"
	"steadystate/internal/core/sessions"
	"steadystate/internal/core/timekeeper"
	"steadystate/internal/i18n"
	"steadystate/internal/settings"
)

const defaultWidth = 60

// eventMsg carries one keeper event into the update loop.
type eventMsg timekeeper.Event

// closedMsg reports that the keeper closed its event channel.
type closedMsg struct{}

// settingsMsg reports that the settings changed outside the key handlers,
// for example after the settings file was reloaded.
type settingsMsg struct{}

// Model is the terminal UI state.
type Model struct {
	controller  Controller
	preferences Preferences
	events      <-chan timekeeper.Event

	translator *i18n.Translator
	background appearance.Background
	snapshot   timekeeper.Snapshot
	lastCounts sessions.Counts
	notice     string

	keys             keyMap
	help             help.Model
	progress         progress.Model
	progressMode     model.Mode
	showAchievements bool
	width            int
}

// NewModel builds the terminal model. events is usually a keeper subscription.
func NewModel(controller Controller, preferences Preferences, events <-chan timekeeper.Event) Model {
	translator := preferences.Translator()
	snapshot := controller.Snapshot()
	m := Model{
		controller:  controller,
		preferences: preferences,
		events:      events,
		translator:  translator,
		background:  appearance.Lookup(preferences.Settings().Background),
		snapshot:    snapshot,
		lastCounts:  snapshot.Counts,
		keys:        newKeyMap(translator),
		help:        help.New(),
		width:       defaultWidth,
	}
	m.restyleProgress()
	return m
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, controller Controller, preferences Preferences, events <-chan timekeeper.Event) error {
	program := tea.NewProgram(NewModel(controller, preferences, events), tea.WithAltScreen(), tea.WithContext(ctx))
	forwardSettings(preferences, program.Send)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// forwardSettings delivers settings changes to the program. send runs on its
// own goroutine because changes made from Update would otherwise block the
// loop that has to receive them.
func forwardSettings(preferences Preferences, send func(tea.Msg)) {
	preferences.OnSettingsChange(func(settings.Settings) {
		go send(settingsMsg{})
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.restyleProgress()
		return m, nil
	case eventMsg:
		m.handleEvent(timekeeper.Event(msg))
		return m, waitForEvent(m.events)
	case closedMsg:
		return m, tea.Quit
	case settingsMsg:
		m.reloadPreferences()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		m.notice = ""
	case key.Matches(msg, m.keys.Focus):
		m.switchMode(model.ModeFocus)
	case key.Matches(msg, m.keys.ShortBreak):
		m.switchMode(model.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.switchMode(model.ModeLongBreak)
	case key.Matches(msg, m.keys.Background):
		next := appearance.Next(m.background.ID)
		m.preferences.SetBackground(next.ID)
		m.background = next
		return m, nil
	case key.Matches(msg, m.keys.Language):
		m.preferences.SetLanguage(i18n.NextLanguage(m.translator.Language()))
		m.translator = m.preferences.Translator()
		m.keys = newKeyMap(m.translator)
		return m, nil
	case key.Matches(msg, m.keys.Achievements):
		m.showAchievements = !m.showAchievements
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	m.setSnapshot(m.controller.Snapshot())
	return m, nil
}

func (m *Model) reloadPreferences() {
	m.background = appearance.Lookup(m.preferences.Settings().Background)
	translator := m.preferences.Translator()
	if translator != m.translator {
		m.translator = translator
		m.keys = newKeyMap(translator)
	}
}

func (m *Model) switchMode(mode model.Mode) {
	m.controller.SwitchMode(mode)
	m.notice = ""
}

func (m *Model) handleEvent(event timekeeper.Event) {
	m.setSnapshot(event.Snapshot)
	switch event.Type {
	case timekeeper.EventCompleted:
		title, description := m.translator.Completion(event.Mode)
		m.notice = title + " " + description
		for _, achievement := range achievements.Unlocked(m.lastCounts, event.Counts) {
			m.notice += "\n" + m.translator.Tf("achievementUnlocked", map[string]any{"Name": m.translator.T(achievement.NameKey)})
		}
	case timekeeper.EventIdlePause:
		m.notice = m.translator.T("idlePaused")
	case timekeeper.EventStateChange:
		if !event.PendingTransition && event.Running {
			m.notice = ""
		}
	}
	m.lastCounts = event.Counts
}

func (m *Model) setSnapshot(snapshot timekeeper.Snapshot) {
	m.snapshot = snapshot
	if snapshot.Mode != m.progressMode {
		m.restyleProgress()
	}
}

func (m *Model) restyleProgress() {
	start, end := appearance.ModeAccent(m.snapshot.Mode)
	bar := progress.New(progress.WithGradient(start, end), progress.WithoutPercentage())
	bar.Width = m.width - 8
	if bar.Width < 10 {
		bar.Width = 10
	}
	m.progress = bar
	m.progressMode = m.snapshot.Mode
}

// View implements tea.Model.
func (m Model) View() string {
	accentStart, _ := appearance.ModeAccent(m.snapshot.Mode)
	accent := lipgloss.Color(accentStart)
	surface := lipgloss.Color(m.background.Start)
	border := lipgloss.Color(m.background.Middle)

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.translator.T("appName"))
	tagline := lipgloss.NewStyle().Faint(true).Render(m.translator.T("tagline"))

	tabs := make([]string, 0, len(model.AllModes()))
	for _, mode := range model.AllModes() {
		style := lipgloss.NewStyle().Padding(0, 1)
		if mode == m.snapshot.Mode {
			style = style.Bold(true).Background(accent).Foreground(lipgloss.Color("#ffffff"))
		}
		tabs = append(tabs, style.Render(m.translator.ModeLabel(mode)))
	}

	state := m.translator.T("paused")
	if m.snapshot.Running {
		state = m.translator.T("running")
	}
	clock := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.snapshot.Clock())
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%s · %s", m.translator.ModeLabel(m.snapshot.Mode), state))

	counts := m.snapshot.Counts
	stats := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		m.translator.T("todayStats"),
		m.translator.ModeLabel(model.ModeFocus), counts.Focus,
		m.translator.ModeLabel(model.ModeShortBreak), counts.ShortBreak,
		m.translator.ModeLabel(model.ModeLongBreak), counts.LongBreak,
	)
	tip := lipgloss.NewStyle().Italic(true).Faint(true).Render(m.translator.T("tipLabel") + " " + m.translator.T("tip"))

	sections := []string{
		title,
		tagline,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		clock + "  " + status,
		m.progress.ViewAs(m.snapshot.Progress()),
		"",
		stats,
		tip,
	}
	if m.notice != "" {
		sections = append(sections, "", lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24")).Render(m.notice))
	}
	if m.showAchievements {
		sections = append(sections, "", m.achievementsView())
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(surface).
		Padding(1, 2).
		Render(strings.Join(sections, "\n"))

	return lipgloss.NewStyle().Padding(1, 2).Render(card + "\n" + m.help.View(m.keys))
}

func (m Model) achievementsView() string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(m.translator.T("achievements"))}
	for _, status := range achievements.Evaluate(m.snapshot.Counts) {
		mark := "[ ]"
		if status.Unlocked {
			mark = lipgloss.NewStyle().Foreground(lipgloss.Color(status.Color)).Render("[x]")
		}
		lines = append(lines, fmt.Sprintf("%s %s %d/%d", mark, m.translator.T(status.NameKey), status.Current, status.Requirement))
	}
	return strings.Join(lines, "\n")
}
