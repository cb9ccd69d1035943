// Package feedback schedules the reset of the "recently copied" marker.
package feedback

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ResetMsg is delivered when a scheduled reset fires. Token is the copy
// token the reset was scheduled for.
type ResetMsg struct {
	Token uint64
}

// Scheduler arms at most one pending reset. Scheduling a new reset cancels
// the previous one, so a stale reset never reaches the model.
type Scheduler struct {
	clock clockwork.Clock

	mu     sync.Mutex
	timer  clockwork.Timer
	cancel context.CancelFunc
}

// NewScheduler uses clock for timers; pass nil for the real clock.
func NewScheduler(clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{clock: clock}
}

// Schedule cancels any pending reset and arms a new one that fires after d.
// The returned command yields ResetMsg when the timer fires, or nil if the
// reset was superseded or stopped first.
func (s *Scheduler) Schedule(token uint64, d time.Duration) tea.Cmd {
	s.mu.Lock()
	s.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	timer := s.clock.NewTimer(d)
	s.timer, s.cancel = timer, cancel
	s.mu.Unlock()

	log.Debug().Uint64("token", token).Dur("duration", d).Msg("scheduled copy reset")

	return func() tea.Msg {
		select {
		case <-timer.Chan():
			s.release(timer)
			return ResetMsg{Token: token}
		case <-ctx.Done():
			return nil
		}
	}
}

// Stop cancels the pending reset, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Pending reports whether a reset is armed and has not fired yet.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		stopAndDrainTimer(s.timer)
		s.timer = nil
		log.Debug().Msg("cancelled pending copy reset")
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// release forgets timer once it has fired, unless it was already replaced.
func (s *Scheduler) release(timer clockwork.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == timer {
		s.timer = nil
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
	}
}

func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
