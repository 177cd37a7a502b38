package achievements

import "steadystate/internal/core/sessions"

// Kind selects which session count an achievement tracks.
type Kind string

const (
	KindFocus      Kind = "focus"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
	KindTotal      Kind = "total"
)

// Achievement is a milestone unlocked by completed sessions.
type Achievement struct {
	ID             string
	NameKey        string
	DescriptionKey string
	Requirement    int
	Kind           Kind
	// Color is the accent colour as #rrggbb.
	Color string
}

// Status is the evaluation of one achievement against a set of counts.
type Status struct {
	Achievement
	Current  int
	Progress float64
	Unlocked bool
}

var catalog = []Achievement{
	{ID: "first-focus", NameKey: "firstFocus", DescriptionKey: "firstFocusDesc", Requirement: 1, Kind: KindFocus, Color: "#eab308"},
	{ID: "focus-master", NameKey: "focusMaster", DescriptionKey: "focusMasterDesc", Requirement: 10, Kind: KindFocus, Color: "#3b82f6"},
	{ID: "focus-legend", NameKey: "focusLegend", DescriptionKey: "focusLegendDesc", Requirement: 50, Kind: KindFocus, Color: "#a855f7"},
	{ID: "break-taker", NameKey: "breakTaker", DescriptionKey: "breakTakerDesc", Requirement: 5, Kind: KindShortBreak, Color: "#22c55e"},
	{ID: "rest-master", NameKey: "restMaster", DescriptionKey: "restMasterDesc", Requirement: 3, Kind: KindLongBreak, Color: "#6366f1"},
	{ID: "streak-fire", NameKey: "streakFire", DescriptionKey: "streakFireDesc", Requirement: 100, Kind: KindTotal, Color: "#ef4444"},
}

// Catalog returns every achievement in display order.
func Catalog() []Achievement {
	return append([]Achievement(nil), catalog...)
}

// Evaluate reports the progress of every achievement.
func Evaluate(counts sessions.Counts) []Status {
	statuses := make([]Status, 0, len(catalog))
	for _, achievement := range catalog {
		statuses = append(statuses, evaluate(achievement, counts))
	}
	return statuses
}

// Unlocked returns the achievements unlocked by moving from prev to next.
func Unlocked(prev, next sessions.Counts) []Achievement {
	var unlocked []Achievement
	for _, achievement := range catalog {
		if !evaluate(achievement, prev).Unlocked && evaluate(achievement, next).Unlocked {
			unlocked = append(unlocked, achievement)
		}
	}
	return unlocked
}

func evaluate(achievement Achievement, counts sessions.Counts) Status {
	current := tracked(achievement.Kind, counts)
	status := Status{
		Achievement: achievement,
		Unlocked:    current >= achievement.Requirement,
	}
	if current > achievement.Requirement {
		current = achievement.Requirement
	}
	status.Current = current
	if achievement.Requirement > 0 {
		status.Progress = float64(current) / float64(achievement.Requirement)
	}
	return status
}

func tracked(kind Kind, counts sessions.Counts) int {
	switch kind {
	case KindFocus:
		return counts.Focus
	case KindShortBreak:
		return counts.ShortBreak
	case KindLongBreak:
		return counts.LongBreak
	case KindTotal:
		return counts.Total()
	}
	return 0
}
