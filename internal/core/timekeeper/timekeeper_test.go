package timekeeper

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"steadystate/internal/core/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var shortDurations = model.Durations{
	Focus:      3 * time.Second,
	ShortBreak: 2 * time.Second,
	LongBreak:  4 * time.Second,
}

func newTestKeeper(t *testing.T, durations model.Durations, options Config) *TimeKeeper {
	t.Helper()
	if options.TickInterval == 0 {
		options.TickInterval = 2 * time.Millisecond
	}
	if options.CompletionDelay == 0 {
		options.CompletionDelay = 20 * time.Millisecond
	}
	logger := zerolog.Nop()
	options.Logger = &logger

	keeper := New(durations, options)
	t.Cleanup(keeper.Close)
	return keeper
}

func waitForEvent(t *testing.T, events <-chan Event, eventType EventType) Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event channel closed while waiting for %s", eventType)
			if event.Type == eventType {
				return event
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", eventType)
		}
	}
}

func TestTimeKeeperCompletesAndTransitions(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())

	completed := waitForEvent(t, events, EventCompleted)
	assert.Equal(t, model.ModeFocus, completed.Mode)
	assert.Equal(t, model.ModeShortBreak, completed.Next)
	assert.Zero(t, completed.Remaining)
	assert.False(t, completed.Running)
	assert.True(t, completed.PendingTransition)
	assert.Equal(t, 1, completed.Counts.Focus)

	require.Eventually(t, func() bool {
		snapshot := keeper.Snapshot()
		return snapshot.Mode == model.ModeShortBreak &&
			snapshot.Remaining == shortDurations.ShortBreak &&
			!snapshot.Running &&
			!snapshot.PendingTransition
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, keeper.Snapshot().Counts.Focus)
}

func TestTimeKeeperLongBreakReturnsToFocus(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{})
	events := keeper.Subscribe(256)

	keeper.SwitchMode(model.ModeLongBreak)
	require.True(t, keeper.Start())

	completed := waitForEvent(t, events, EventCompleted)
	assert.Equal(t, model.ModeFocus, completed.Next)
	require.Eventually(t, func() bool {
		return keeper.Snapshot().Mode == model.ModeFocus
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, keeper.Snapshot().Counts.LongBreak)
}

func TestTimeKeeperManualSwitchCancelsPendingTransition(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{CompletionDelay: 100 * time.Millisecond})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	keeper.SwitchMode(model.ModeLongBreak)
	time.Sleep(200 * time.Millisecond)

	snapshot := keeper.Snapshot()
	assert.Equal(t, model.ModeLongBreak, snapshot.Mode)
	assert.Equal(t, shortDurations.LongBreak, snapshot.Remaining)
	assert.False(t, snapshot.PendingTransition)
}

func TestTimeKeeperResetCancelsPendingTransition(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{CompletionDelay: 100 * time.Millisecond})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	keeper.Reset()
	time.Sleep(200 * time.Millisecond)

	snapshot := keeper.Snapshot()
	assert.Equal(t, model.ModeFocus, snapshot.Mode)
	assert.Equal(t, shortDurations.Focus, snapshot.Remaining)
}

func TestTimeKeeperStartIsNoOpWhileTransitionPending(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{CompletionDelay: time.Minute})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	assert.False(t, keeper.Start())
	assert.False(t, keeper.Snapshot().Running)
}

func TestTimeKeeperSetDurationsWhileTransitionPending(t *testing.T) {
	durations := model.Durations{Focus: time.Second, ShortBreak: 2 * time.Second, LongBreak: 4 * time.Second}
	keeper := newTestKeeper(t, durations, Config{CompletionDelay: 200 * time.Millisecond})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	durations.Focus = 100 * time.Second
	keeper.SetDurations(durations)

	snapshot := keeper.Snapshot()
	assert.Zero(t, snapshot.Remaining)
	assert.True(t, snapshot.PendingTransition)
	assert.False(t, keeper.Start())

	require.Eventually(t, func() bool {
		return keeper.Snapshot().Mode == model.ModeShortBreak
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2*time.Second, keeper.Snapshot().Remaining)
}

func TestTimeKeeperStartCancelsStaleTransition(t *testing.T) {
	durations := model.Durations{Focus: time.Second, ShortBreak: 2 * time.Second, LongBreak: 4 * time.Second}
	keeper := newTestKeeper(t, durations, Config{CompletionDelay: 200 * time.Millisecond})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	keeper.mu.Lock()
	keeper.machine.SetDurations(model.Durations{Focus: time.Hour, ShortBreak: 2 * time.Second, LongBreak: 4 * time.Second})
	keeper.machine.Reset()
	keeper.mu.Unlock()
	require.True(t, keeper.Start())
	assert.False(t, keeper.Snapshot().PendingTransition)

	time.Sleep(300 * time.Millisecond)
	snapshot := keeper.Snapshot()
	assert.Equal(t, model.ModeFocus, snapshot.Mode)
	assert.True(t, snapshot.Running)
}

func TestTimeKeeperSkipTransition(t *testing.T) {
	keeper := newTestKeeper(t, shortDurations, Config{CompletionDelay: time.Minute})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	keeper.SkipTransition()

	snapshot := keeper.Snapshot()
	assert.Equal(t, model.ModeShortBreak, snapshot.Mode)
	assert.False(t, snapshot.PendingTransition)
}

func TestTimeKeeperPauseFreezesCountdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	keeper := newTestKeeper(t, model.DefaultDurations(), Config{})
	require.True(t, keeper.Start())
	require.Eventually(t, func() bool {
		return keeper.Snapshot().Remaining < 25*time.Minute
	}, time.Second, 2*time.Millisecond)

	keeper.Pause()
	keeper.Pause()
	frozen := keeper.Snapshot().Remaining
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, frozen, keeper.Snapshot().Remaining)
	assert.False(t, keeper.Snapshot().Running)
}

func TestTimeKeeperToggle(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultDurations(), Config{})

	keeper.Toggle()
	assert.True(t, keeper.Snapshot().Running)
	keeper.Toggle()
	assert.False(t, keeper.Snapshot().Running)
}

func TestTimeKeeperSwitchRenewsSessionID(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultDurations(), Config{})
	first := keeper.Snapshot().SessionID
	require.NotEmpty(t, first)

	keeper.SwitchMode(model.ModeShortBreak)
	assert.NotEqual(t, first, keeper.Snapshot().SessionID)
}

func TestTimeKeeperSetDurationsResyncsIdleTimer(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultDurations(), Config{})
	events := keeper.Subscribe(16)

	keeper.SetDurations(model.Durations{Focus: 10 * time.Second, ShortBreak: 5 * time.Minute, LongBreak: 15 * time.Minute})

	event := waitForEvent(t, events, EventDurations)
	assert.Equal(t, 10*time.Second, event.Remaining)
	assert.Equal(t, 10*time.Second, keeper.Snapshot().Remaining)
	assert.Equal(t, 10*time.Second, keeper.Durations().Focus)
}

func TestTimeKeeperCloseReleasesResources(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	keeper := New(model.DefaultDurations(), Config{TickInterval: time.Millisecond, Logger: nopLogger()})
	events := keeper.Subscribe(4)
	require.True(t, keeper.Start())

	keeper.Close()
	keeper.Close()

	for range events {
	}
	assert.False(t, keeper.Start())

	late := keeper.Subscribe(1)
	_, ok := <-late
	assert.False(t, ok)
}

func TestTimeKeeperCloseCancelsPendingTransition(t *testing.T) {
	keeper := New(shortDurations, Config{
		TickInterval:    time.Millisecond,
		CompletionDelay: 50 * time.Millisecond,
		Logger:          nopLogger(),
	})
	events := keeper.Subscribe(256)
	require.True(t, keeper.Start())
	waitForEvent(t, events, EventCompleted)

	keeper.Close()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, model.ModeFocus, keeper.Snapshot().Mode)
}

type fakeIdleChecker struct {
	mu    sync.Mutex
	idle  time.Duration
	err   error
	calls int
}

func (checker *fakeIdleChecker) IdleDuration() (time.Duration, error) {
	checker.mu.Lock()
	defer checker.mu.Unlock()
	checker.calls++
	return checker.idle, checker.err
}

func (checker *fakeIdleChecker) Calls() int {
	checker.mu.Lock()
	defer checker.mu.Unlock()
	return checker.calls
}

func TestTimeKeeperIdlePausesFocus(t *testing.T) {
	keeper := newTestKeeper(t, model.DefaultDurations(), Config{IdlePauseAfter: time.Minute})
	keeper.SetIdleChecker(&fakeIdleChecker{idle: 10 * time.Minute})
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())

	event := waitForEvent(t, events, EventIdlePause)
	assert.False(t, event.Running)
	assert.Equal(t, 25*time.Minute, event.Remaining)
}

func TestTimeKeeperIdleIgnoredDuringBreaks(t *testing.T) {
	checker := &fakeIdleChecker{idle: 10 * time.Minute}
	keeper := newTestKeeper(t, shortDurations, Config{IdlePauseAfter: time.Minute})
	keeper.SetIdleChecker(checker)
	events := keeper.Subscribe(256)

	keeper.SwitchMode(model.ModeShortBreak)
	require.True(t, keeper.Start())

	waitForEvent(t, events, EventCompleted)
	assert.Zero(t, checker.Calls())
}

func TestTimeKeeperIdleUnsupportedDisablesCheck(t *testing.T) {
	checker := &fakeIdleChecker{err: ErrIdleUnsupported}
	keeper := newTestKeeper(t, model.DefaultDurations(), Config{IdlePauseAfter: time.Minute, IdleCheckInterval: time.Millisecond})
	keeper.SetIdleChecker(checker)
	events := keeper.Subscribe(256)

	require.True(t, keeper.Start())
	event := waitForEvent(t, events, EventIdleError)
	assert.Equal(t, ErrIdleUnsupported.Error(), event.Message)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, checker.Calls())
	assert.True(t, keeper.Snapshot().Running)
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
