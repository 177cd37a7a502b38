package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	PeakDuration Range
	RestDuration Range
}

// Engine swaps frames on a single background goroutine.
type Engine struct {
	mu          sync.Mutex
	config      Config
	updateFrame func(fyne.Resource)
	cancel      context.CancelFunc
	running     sync.WaitGroup
	rng         *rand.Rand
}

// New creates a new animation engine. updateFrame runs on the animation
// goroutine; callers touching widgets must hop onto the UI thread.
func New(config Config, updateFrame func(fyne.Resource)) *Engine {
	return &Engine{
		config:      config,
		updateFrame: updateFrame,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse replaces any active animation with a pulse.
func (engine *Engine) StartPulse(ctx context.Context, spec PulseSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.updateFrame(spec.Rest)
		for beat := 0; spec.Beats <= 0 || beat < spec.Beats; beat++ {
			engine.updateFrame(spec.Peak)
			if !sleepWithContext(runCtx, engine.config.PeakDuration.Random(engine.rng)) {
				return
			}
			engine.updateFrame(spec.Rest)
			if !sleepWithContext(runCtx, engine.config.RestDuration.Random(engine.rng)) {
				return
			}
		}
	})
}

// Stop terminates any active animation and waits for its goroutine.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.mu.Unlock()
	engine.running.Wait()
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.running.Add(1)
	engine.mu.Unlock()

	go func() {
		defer engine.running.Done()
		run(runCtx)
	}()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
