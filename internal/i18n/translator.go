package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"steadystate/internal/core/model"
)

// DefaultLanguage is used when a requested language cannot be matched.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

// Language describes a selectable UI language.
type Language struct {
	Code string
	Name string
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "tr", Name: "Türkçe"},
}

var (
	bundleOnce sync.Once
	bundle     *goi18n.Bundle
	bundleErr  error
	matcher    language.Matcher
)

func loadBundle() (*goi18n.Bundle, error) {
	bundleOnce.Do(func() {
		loaded := goi18n.NewBundle(language.English)
		loaded.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		tags := make([]language.Tag, 0, len(languages))
		for _, lang := range languages {
			if _, err := loaded.LoadMessageFileFS(localeFS, "locales/"+lang.Code+".yaml"); err != nil {
				bundleErr = fmt.Errorf("load locale %s: %w", lang.Code, err)
				return
			}
			tags = append(tags, language.Make(lang.Code))
		}
		bundle = loaded
		matcher = language.NewMatcher(tags)
	})
	return bundle, bundleErr
}

// Translator renders labels in one language.
type Translator struct {
	localizer *goi18n.Localizer
	lang      string
}

// New returns a translator for lang. Unknown languages fall back to the
// closest supported match and then to English.
func New(lang string) *Translator {
	loaded, err := loadBundle()
	if err != nil {
		// Embedded locales are compiled in; this only fails on a broken build.
		panic(err)
	}
	resolved := Resolve(lang)
	return &Translator{
		localizer: goi18n.NewLocalizer(loaded, resolved),
		lang:      resolved,
	}
}

// Language returns the resolved language code.
func (translator *Translator) Language() string {
	return translator.lang
}

// T returns the label for id, or id itself when it is unknown.
func (translator *Translator) T(id string) string {
	return translator.Tf(id, nil)
}

// Tf renders a templated label.
func (translator *Translator) Tf(id string, data map[string]any) string {
	message, err := translator.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || message == "" {
		return id
	}
	return message
}

// ModeLabel returns the display label of mode.
func (translator *Translator) ModeLabel(mode model.Mode) string {
	switch mode {
	case model.ModeShortBreak:
		return translator.T("shortBreak")
	case model.ModeLongBreak:
		return translator.T("longBreak")
	default:
		return translator.T("focus")
	}
}

// Completion returns the title and description announcing that a session of
// mode has finished.
func (translator *Translator) Completion(mode model.Mode) (string, string) {
	switch mode {
	case model.ModeShortBreak:
		return translator.T("breakComplete"), translator.T("breakCompleteDesc")
	case model.ModeLongBreak:
		return translator.T("longBreakComplete"), translator.T("longBreakCompleteDesc")
	default:
		return translator.T("focusComplete"), translator.T("focusCompleteDesc")
	}
}

// Languages returns the supported languages.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// Supported reports whether code is exactly one of the supported languages.
func Supported(code string) bool {
	for _, lang := range languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// Resolve maps an arbitrary language tag onto a supported language code.
func Resolve(code string) string {
	resolved, ok := match(code)
	if !ok {
		return DefaultLanguage
	}
	return resolved
}

// NextLanguage cycles through the supported languages.
func NextLanguage(code string) string {
	for index, lang := range languages {
		if lang.Code == code {
			return languages[(index+1)%len(languages)].Code
		}
	}
	return DefaultLanguage
}

// DetectLanguage matches the operating system locale against the supported
// languages.
func DetectLanguage() string {
	locales, err := locale.GetLocales()
	if err != nil {
		return DefaultLanguage
	}
	for _, candidate := range locales {
		if resolved, ok := match(candidate); ok {
			return resolved
		}
	}
	return DefaultLanguage
}

func match(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	if _, err := loadBundle(); err != nil {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return languages[index].Code, true
}
