// Package session holds the short-lived timer state machines that pace a
// game round. It is storage-free: when a session finishes the caller
// records the final score through the player stats service.
package session

import (
	"sync"
	"time"
)

// Countdown fires onExpire once after d unless stopped first.
type Countdown struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	expired bool
}

// NewCountdown starts a countdown. onExpire runs on the timer goroutine.
func NewCountdown(d time.Duration, onExpire func()) *Countdown {
	c := &Countdown{}
	c.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		if c.stopped || c.expired {
			c.mu.Unlock()
			return
		}
		c.expired = true
		c.mu.Unlock()
		onExpire()
	})
	return c
}

// Stop cancels the countdown. A timer that already fired but has not yet
// run its callback is suppressed.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

// Expired reports whether onExpire has run.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Phase is a stage in a draw-and-guess round.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseDrawing  Phase = "drawing"
	PhaseGuessing Phase = "guessing"
	PhaseResults  Phase = "results"
)

// Default pacing for a draw-and-guess game.
const (
	DefaultRounds           = 3
	DefaultDrawingDuration  = 30 * time.Second
	DefaultGuessingDuration = 20 * time.Second
	DefaultRoundInterlude   = 2 * time.Second
)

// GameConfig tunes a phase chain. Zero values fall back to the defaults
// above; tests shrink the durations.
type GameConfig struct {
	Rounds           int
	DrawingDuration  time.Duration
	GuessingDuration time.Duration
	RoundInterlude   time.Duration

	// OnPhase observes every transition, including the initial move out of
	// waiting. Called outside the game lock.
	OnPhase func(phase Phase, round int)
}

// Game walks waiting -> drawing -> guessing for each round, then results.
// Transitions happen on timer expiry or an explicit AdvancePhase call,
// whichever comes first.
type Game struct {
	mu        sync.Mutex
	cfg       GameConfig
	phase     Phase
	round     int
	countdown *Countdown
	stopped   bool
}

func NewGame(cfg GameConfig) *Game {
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.DrawingDuration <= 0 {
		cfg.DrawingDuration = DefaultDrawingDuration
	}
	if cfg.GuessingDuration <= 0 {
		cfg.GuessingDuration = DefaultGuessingDuration
	}
	if cfg.RoundInterlude <= 0 {
		cfg.RoundInterlude = DefaultRoundInterlude
	}
	return &Game{cfg: cfg, phase: PhaseWaiting}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Round returns the 1-based round number, 0 before Start.
func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// Start moves the game out of waiting into round one's drawing phase.
// Calling Start twice is a no-op.
func (g *Game) Start() {
	g.mu.Lock()
	if g.phase != PhaseWaiting || g.stopped {
		g.mu.Unlock()
		return
	}
	g.round = 1
	g.mu.Unlock()
	g.enter(PhaseDrawing)
}

// AdvancePhase ends the current timed phase early, for example when the
// guess is submitted before the clock runs out.
func (g *Game) AdvancePhase() {
	g.mu.Lock()
	phase := g.phase
	if g.stopped || (phase != PhaseDrawing && phase != PhaseGuessing) {
		g.mu.Unlock()
		return
	}
	if g.countdown != nil {
		g.countdown.Stop()
		g.countdown = nil
	}
	g.mu.Unlock()
	g.next(phase)
}

// Stop abandons the game. Pending timers are cancelled and no further
// transitions fire.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	if g.countdown != nil {
		g.countdown.Stop()
		g.countdown = nil
	}
}

// enter transitions into phase, arming the expiry timer for timed phases.
func (g *Game) enter(phase Phase) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return
	}
	g.phase = phase
	if g.countdown != nil {
		g.countdown.Stop()
		g.countdown = nil
	}
	round := g.round
	var d time.Duration
	switch phase {
	case PhaseDrawing:
		d = g.cfg.DrawingDuration
	case PhaseGuessing:
		d = g.cfg.GuessingDuration
	}
	if d > 0 {
		g.countdown = NewCountdown(d, func() {
			g.mu.Lock()
			stale := g.stopped || g.phase != phase
			g.mu.Unlock()
			if stale {
				return
			}
			g.next(phase)
		})
	}
	g.mu.Unlock()
	if g.cfg.OnPhase != nil {
		g.cfg.OnPhase(phase, round)
	}
}

// next decides what follows the phase that just ended.
func (g *Game) next(ended Phase) {
	switch ended {
	case PhaseDrawing:
		g.enter(PhaseGuessing)
	case PhaseGuessing:
		g.mu.Lock()
		last := g.round >= g.cfg.Rounds
		if !last {
			g.round++
		}
		interlude := g.cfg.RoundInterlude
		g.mu.Unlock()
		if last {
			g.enter(PhaseResults)
			return
		}
		// Brief pause showing the round result before the next word.
		g.mu.Lock()
		if g.stopped {
			g.mu.Unlock()
			return
		}
		g.countdown = NewCountdown(interlude, func() {
			g.mu.Lock()
			stale := g.stopped
			g.mu.Unlock()
			if stale {
				return
			}
			g.enter(PhaseDrawing)
		})
		g.mu.Unlock()
	}
}
