package dialogs

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"steadystate/internal/core/achievements"
	"steadystate/internal/core/appearance"
	"steadystate/internal/core/sessions"
	"steadystate/internal/i18n"
	"steadystate/internal/ui/animation"
	"steadystate/resources"
)

// AchievementList renders the progress of every achievement.
type AchievementList struct {
	content fyne.CanvasObject
	rows    map[string]*achievementRow
	pulses  []*animation.Engine
	cancel  context.CancelFunc
}

type achievementRow struct {
	badge    *canvas.Image
	name     *widget.Label
	progress *widget.ProgressBar
	status   *widget.Label
}

// NewAchievementList builds the list. Achievements in fresh pulse until Stop.
func NewAchievementList(translator *i18n.Translator, counts sessions.Counts, fresh []achievements.Achievement) *AchievementList {
	list := &AchievementList{rows: make(map[string]*achievementRow)}
	isFresh := make(map[string]bool, len(fresh))
	for _, achievement := range fresh {
		isFresh[achievement.ID] = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	list.cancel = cancel

	items := container.NewVBox()
	for _, status := range achievements.Evaluate(counts) {
		row := newAchievementRow(translator, status)
		list.rows[status.ID] = row

		accent := canvas.NewRectangle(appearance.MustHex(status.Color))
		accent.SetMinSize(fyne.NewSize(4, 0))
		text := container.NewVBox(row.name, widget.NewLabel(translator.T(status.DescriptionKey)), row.progress)
		items.Add(container.NewBorder(nil, nil, container.NewHBox(accent, row.badge), row.status, text))

		if isFresh[status.ID] && status.Unlocked {
			engine := animation.New(animation.DefaultConfig(), row.setBadge)
			engine.StartPulse(ctx, animation.PulseSpec{
				Rest: resources.MustBadge(resources.BadgeSmall),
				Peak: resources.MustBadge(resources.BadgeLarge),
			})
			list.pulses = append(list.pulses, engine)
		}
	}

	scroll := container.NewVScroll(items)
	scroll.SetMinSize(fyne.NewSize(380, 360))
	list.content = scroll
	return list
}

func newAchievementRow(translator *i18n.Translator, status achievements.Status) *achievementRow {
	badge := canvas.NewImageFromResource(resources.MustBadge(resources.BadgeSmall))
	badge.FillMode = canvas.ImageFillContain
	badge.SetMinSize(fyne.NewSize(32, 32))
	if !status.Unlocked {
		badge.Translucency = 0.7
	}

	name := widget.NewLabelWithStyle(translator.T(status.NameKey), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	progress := widget.NewProgressBar()
	progress.SetValue(status.Progress)
	progress.TextFormatter = func() string {
		return fmt.Sprintf("%d / %d", status.Current, status.Requirement)
	}

	statusLabel := widget.NewLabel("")
	if status.Unlocked {
		statusLabel.SetText(translator.T("unlocked"))
		statusLabel.Importance = widget.SuccessImportance
	}

	return &achievementRow{badge: badge, name: name, progress: progress, status: statusLabel}
}

func (row *achievementRow) setBadge(resource fyne.Resource) {
	fyne.Do(func() {
		row.badge.Resource = resource
		row.badge.Refresh()
	})
}

// Content returns the scrollable list.
func (list *AchievementList) Content() fyne.CanvasObject {
	return list.content
}

// Stop ends every pulse.
func (list *AchievementList) Stop() {
	list.cancel()
	for _, engine := range list.pulses {
		engine.Stop()
	}
}

// ShowAchievements opens the achievements list over parent.
func ShowAchievements(parent fyne.Window, translator *i18n.Translator, counts sessions.Counts, fresh []achievements.Achievement) {
	list := NewAchievementList(translator, counts, fresh)
	custom := dialog.NewCustom(translator.T("achievements"), translator.T("close"), list.Content(), parent)
	custom.SetOnClosed(list.Stop)
	custom.Show()
}
