package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"steadystate/internal/app"
	"steadystate/internal/core/model"
	"steadystate/internal/i18n"
	"steadystate/internal/settings"
)

func TestOverridesWinOverFile(t *testing.T) {
	values := overrides{language: "en", background: "gradient4", focus: 45, long: 20}
	got := values.apply(settings.Default())

	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "gradient4", got.Background)
	assert.Equal(t, 45, got.FocusMinutes)
	assert.Equal(t, 5, got.ShortBreakMinutes)
	assert.Equal(t, 20, got.LongBreakMinutes)
}

func TestAutoLanguageIsDetected(t *testing.T) {
	got := overrides{language: settings.AutoLanguage}.apply(settings.Default())
	require.Equal(t, settings.AutoLanguage, got.Language)

	application := app.New(got, app.Options{})
	defer application.Close()
	assert.True(t, i18n.Supported(application.Settings().Language), application.Settings().Language)
}

func TestRunAppDetectsLanguageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: auto\n"), 0o600))

	err := runApp(context.Background(), &rootOptions{configPath: path}, func(_ context.Context, application *app.App) error {
		assert.Equal(t, i18n.DetectLanguage(), application.Settings().Language)
		assert.Equal(t, application.Settings().Language, application.Translator().Language())
		return nil
	})
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, app.Name+" "+Version+"\n", out.String())
}

func TestTUIRequiresTerminal(t *testing.T) {
	if isTerminal(os.Stdin, os.Stdout) {
		t.Skip("running attached to a terminal")
	}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"tui"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.True(t, errors.Is(err, ErrNotTerminal))
}

func TestRunAppLoadsSettingsAndStopsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 30\nlanguage: en\n"), 0o600))

	options := &rootOptions{configPath: path, overrides: overrides{short: 7}}
	err := runApp(context.Background(), options, func(_ context.Context, application *app.App) error {
		current := application.Settings()
		assert.Equal(t, 30, current.FocusMinutes)
		assert.Equal(t, 7, current.ShortBreakMinutes)
		assert.Equal(t, "en", current.Language)
		assert.Equal(t, 30*time.Minute, application.Keeper().Snapshot().Remaining)
		return nil
	})
	require.NoError(t, err)
}

func TestRunAppHotReloadsKeepingOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 30\n"), 0o600))

	options := &rootOptions{configPath: path, overrides: overrides{language: "en"}}
	err := runApp(context.Background(), options, func(_ context.Context, application *app.App) error {
		require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 12\nlanguage: tr\n"), 0o600))
		require.Eventually(t, func() bool {
			return application.Settings().FocusMinutes == 12
		}, 5*time.Second, 20*time.Millisecond)
		assert.Equal(t, "en", application.Settings().Language)
		assert.Equal(t, 12*time.Minute, application.Keeper().Snapshot().Remaining)
		return nil
	})
	require.NoError(t, err)
}

func TestRunAppOpensInRequestedMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	options := &rootOptions{configPath: path, mode: "short"}

	err := runApp(context.Background(), options, func(_ context.Context, application *app.App) error {
		snapshot := application.Keeper().Snapshot()
		assert.Equal(t, model.ModeShortBreak, snapshot.Mode)
		assert.Equal(t, 5*time.Minute, snapshot.Remaining)
		return nil
	})
	require.NoError(t, err)
}

func TestRunAppRejectsUnknownMode(t *testing.T) {
	called := false
	err := runApp(context.Background(), &rootOptions{mode: "nap"}, func(context.Context, *app.App) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nap")
	assert.False(t, called)
}

func TestRunAppWithoutConfigDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "settings.yaml")
	frontendErr := errors.New("window closed badly")

	err := runApp(context.Background(), &rootOptions{configPath: path}, func(context.Context, *app.App) error {
		return frontendErr
	})
	assert.ErrorIs(t, err, frontendErr)
}
