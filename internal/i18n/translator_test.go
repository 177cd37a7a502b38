package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steadystate/internal/core/achievements"
	"steadystate/internal/core/appearance"
	"steadystate/internal/core/model"
)

func TestTranslatorLabels(t *testing.T) {
	english := New("en")
	turkish := New("tr")

	assert.Equal(t, "Focus", english.ModeLabel(model.ModeFocus))
	assert.Equal(t, "Odaklanma", turkish.ModeLabel(model.ModeFocus))
	assert.Equal(t, "Kısa Mola", turkish.ModeLabel(model.ModeShortBreak))
	assert.Equal(t, "Long Break", english.ModeLabel(model.ModeLongBreak))
}

func TestTranslatorCompletion(t *testing.T) {
	english := New("en")
	title, description := english.Completion(model.ModeFocus)
	assert.Equal(t, "Focus session complete! 🎉", title)
	assert.Equal(t, "Time for a short break.", description)

	title, _ = english.Completion(model.ModeLongBreak)
	assert.Equal(t, "Long break complete! 🚀", title)
}

func TestTranslatorTemplate(t *testing.T) {
	english := New("en")
	got := english.Tf("achievementUnlocked", map[string]any{"Name": "First Focus"})
	assert.Equal(t, "Achievement unlocked: First Focus", got)
}

func TestTranslatorUnknownMessageReturnsID(t *testing.T) {
	assert.Equal(t, "noSuchLabel", New("en").T("noSuchLabel"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "tr", Resolve("tr"))
	assert.Equal(t, "tr", Resolve("tr-TR"))
	assert.Equal(t, "en", Resolve("en-GB"))
	assert.Equal(t, DefaultLanguage, Resolve(""))
	assert.Equal(t, DefaultLanguage, Resolve("!!"))
	assert.Equal(t, "tr", New("tr-TR").Language())
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, "tr", NextLanguage("en"))
	assert.Equal(t, "en", NextLanguage("tr"))
	assert.Equal(t, DefaultLanguage, NextLanguage("xx"))
}

func TestLocalesCoverCatalogKeys(t *testing.T) {
	var keys []string
	for _, achievement := range achievements.Catalog() {
		keys = append(keys, achievement.NameKey, achievement.DescriptionKey)
	}
	for _, background := range appearance.All() {
		keys = append(keys, background.NameKey)
	}

	for _, lang := range Languages() {
		translator := New(lang.Code)
		require.Equal(t, lang.Code, translator.Language())
		for _, key := range keys {
			assert.NotEqual(t, key, translator.T(key), "%s missing %s", lang.Code, key)
		}
	}
}
