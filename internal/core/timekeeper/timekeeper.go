package timekeeper

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"steadystate/internal/core/model"
	"steadystate/internal/log"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval    time.Duration
	CompletionDelay time.Duration

	// IdlePauseAfter pauses a running focus session once the user has been
	// idle this long. Zero disables the check.
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration

	Logger *zerolog.Logger
}

// TimeKeeper drives a Machine from a ticker and fans its changes out to
// subscribers. The ticker goroutine exists only while the machine is running.
type TimeKeeper struct {
	mu      sync.Mutex
	machine *Machine
	options Config
	logger  zerolog.Logger

	sessionID     string
	idleChecker   IdleChecker
	lastIdleCheck time.Time

	events []chan Event
	// tickStop is non-nil while a tick goroutine is active.
	tickStop chan struct{}
	ticking  sync.WaitGroup

	transition    *time.Timer
	transitionSeq uint64
	pendingNext   model.Mode

	closed bool
}

// New creates a TimeKeeper idling in focus mode.
func New(durations model.Durations, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.CompletionDelay <= 0 {
		options.CompletionDelay = 2 * time.Second
	}
	if options.IdleCheckInterval <= 0 {
		options.IdleCheckInterval = 5 * time.Second
	}
	logger := log.WithComponent("timekeeper")
	if options.Logger != nil {
		logger = *options.Logger
	}

	return &TimeKeeper{
		machine:   NewMachine(durations),
		options:   options,
		logger:    logger,
		sessionID: uuid.NewString(),
	}
}

// SetIdleChecker injects an idle checker.
func (keeper *TimeKeeper) SetIdleChecker(checker IdleChecker) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.idleChecker = checker
	keeper.lastIdleCheck = time.Time{}
}

// SetIdlePauseAfter changes the idle threshold. Zero disables idle pausing.
func (keeper *TimeKeeper) SetIdlePauseAfter(after time.Duration) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if after < 0 {
		after = 0
	}
	keeper.options.IdlePauseAfter = after
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current timer state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Start begins counting down. It reports false when there is nothing to count,
// for example while a completed session waits for its transition.
func (keeper *TimeKeeper) Start() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.machine.Running() {
		return false
	}
	if !keeper.machine.Start() {
		return false
	}
	keeper.cancelTransitionLocked()
	keeper.lastIdleCheck = time.Time{}
	keeper.startTickerLocked()

	keeper.logger.Debug().
		Str(log.FieldEvent, "timer.started").
		Str(log.FieldSessionID, keeper.sessionID).
		Str(log.FieldMode, keeper.machine.Mode().String()).
		Msg("timer started")
	keeper.emitLocked(Event{Type: EventStateChange})
	return true
}

// Pause stops the countdown. Idempotent.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || !keeper.machine.Running() {
		return
	}
	keeper.machine.Pause()
	keeper.stopTickerLocked()

	keeper.logger.Debug().
		Str(log.FieldEvent, "timer.paused").
		Str(log.FieldSessionID, keeper.sessionID).
		Msg("timer paused")
	keeper.emitLocked(Event{Type: EventStateChange})
}

// Toggle starts a stopped timer and pauses a running one.
func (keeper *TimeKeeper) Toggle() {
	if keeper.Snapshot().Running {
		keeper.Pause()
		return
	}
	keeper.Start()
}

// Reset restores the full duration of the current mode and cancels a pending
// transition.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.cancelTransitionLocked()
	keeper.machine.Reset()
	keeper.stopTickerLocked()
	keeper.renewSessionLocked()

	keeper.logger.Debug().
		Str(log.FieldEvent, "timer.reset").
		Str(log.FieldSessionID, keeper.sessionID).
		Msg("timer reset")
	keeper.emitLocked(Event{Type: EventStateChange})
}

// SwitchMode enters mode stopped, with its full duration. A transition still
// pending from the previous completion is cancelled.
func (keeper *TimeKeeper) SwitchMode(mode model.Mode) {
	if !mode.Valid() {
		return
	}
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.cancelTransitionLocked()
	keeper.switchModeLocked(mode)
}

// SkipTransition performs a pending transition immediately.
func (keeper *TimeKeeper) SkipTransition() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.transition == nil {
		return
	}
	next := keeper.pendingNext
	keeper.cancelTransitionLocked()
	keeper.switchModeLocked(next)
}

// SetDurations updates the configured durations. A stopped timer is resynced
// to the new duration of its mode at once, unless its session has completed
// and is waiting for the transition.
func (keeper *TimeKeeper) SetDurations(durations model.Durations) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.machine.SetDurations(durations)
	keeper.emitLocked(Event{Type: EventDurations})
}

// Durations returns the configured durations.
func (keeper *TimeKeeper) Durations() model.Durations {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.machine.Durations()
}

// Close stops the ticker, cancels any pending transition and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.cancelTransitionLocked()
	keeper.machine.Pause()
	keeper.stopTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	keeper.ticking.Wait()
	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) switchModeLocked(mode model.Mode) {
	previous := keeper.machine.Mode()
	keeper.machine.SwitchMode(mode)
	keeper.stopTickerLocked()
	keeper.renewSessionLocked()

	keeper.logger.Debug().
		Str(log.FieldEvent, "timer.mode_switched").
		Str(log.FieldOldState, previous.String()).
		Str(log.FieldNewState, mode.String()).
		Str(log.FieldSessionID, keeper.sessionID).
		Msg("mode switched")
	keeper.emitLocked(Event{Type: EventStateChange})
}

func (keeper *TimeKeeper) startTickerLocked() {
	if keeper.tickStop != nil {
		return
	}
	stop := make(chan struct{})
	keeper.tickStop = stop
	keeper.ticking.Add(1)
	go keeper.run(stop)
}

func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.tickStop == nil {
		return
	}
	close(keeper.tickStop)
	keeper.tickStop = nil
}

func (keeper *TimeKeeper) run(stop chan struct{}) {
	defer keeper.ticking.Done()
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticker.C:
			keeper.tick(stop, tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(stop chan struct{}, tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	// A ticker that was stopped and replaced must not touch the machine.
	if keeper.closed || keeper.tickStop != stop {
		return
	}

	if keeper.machine.Mode() == model.ModeFocus && keeper.handleIdleCheckLocked(tickTime) {
		return
	}

	if !keeper.machine.Tick() {
		keeper.emitLocked(Event{Type: EventProgress, At: tickTime})
		return
	}

	completed := keeper.machine.Mode()
	next := completed.Next()
	keeper.stopTickerLocked()
	keeper.scheduleTransitionLocked(next)

	snapshot := keeper.snapshotLocked()
	keeper.logger.Info().
		Str(log.FieldEvent, "timer.completed").
		Str(log.FieldSessionID, keeper.sessionID).
		Str(log.FieldMode, completed.String()).
		Str("next", next.String()).
		Int("count", snapshot.Counts.Of(completed)).
		Msg("session completed")
	keeper.emitLocked(Event{Type: EventCompleted, Next: next, At: tickTime})
}

// handleIdleCheckLocked reports whether the session was paused for idleness.
func (keeper *TimeKeeper) handleIdleCheckLocked(now time.Time) bool {
	if keeper.options.IdlePauseAfter <= 0 || keeper.idleChecker == nil {
		return false
	}
	if !keeper.lastIdleCheck.IsZero() && now.Sub(keeper.lastIdleCheck) < keeper.options.IdleCheckInterval {
		return false
	}
	keeper.lastIdleCheck = now

	idleDuration, err := keeper.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			keeper.idleChecker = nil
		}
		keeper.logger.Warn().
			Err(err).
			Str(log.FieldEvent, "timer.idle_error").
			Msg("idle check failed")
		keeper.emitLocked(Event{Type: EventIdleError, Message: err.Error(), At: now})
		return false
	}
	if idleDuration < keeper.options.IdlePauseAfter {
		return false
	}

	keeper.machine.Pause()
	keeper.stopTickerLocked()
	keeper.logger.Info().
		Str(log.FieldEvent, "timer.idle_pause").
		Str(log.FieldSessionID, keeper.sessionID).
		Dur("idle", idleDuration).
		Msg("paused after user went idle")
	keeper.emitLocked(Event{Type: EventIdlePause, Message: "idle pause", At: now})
	return true
}

func (keeper *TimeKeeper) scheduleTransitionLocked(next model.Mode) {
	keeper.cancelTransitionLocked()
	keeper.transitionSeq++
	seq := keeper.transitionSeq
	keeper.pendingNext = next
	keeper.transition = time.AfterFunc(keeper.options.CompletionDelay, func() {
		keeper.fireTransition(seq)
	})
}

func (keeper *TimeKeeper) fireTransition(seq uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || keeper.transition == nil || keeper.transitionSeq != seq {
		return
	}
	next := keeper.pendingNext
	keeper.transition = nil
	keeper.switchModeLocked(next)
}

func (keeper *TimeKeeper) cancelTransitionLocked() {
	if keeper.transition == nil {
		return
	}
	keeper.transition.Stop()
	keeper.transition = nil
	// Invalidate a callback that already fired and waits for the lock.
	keeper.transitionSeq++
}

func (keeper *TimeKeeper) renewSessionLocked() {
	keeper.sessionID = uuid.NewString()
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	snapshot := keeper.machine.Snapshot()
	snapshot.SessionID = keeper.sessionID
	snapshot.PendingTransition = keeper.transition != nil
	return snapshot
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	event.Snapshot = keeper.snapshotLocked()
	if event.Next == "" && keeper.transition != nil {
		event.Next = keeper.pendingNext
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
