// Package reminder arms one-shot local reminders ahead of each remaining
// prayer of the day.
package reminder

import (
	"sync"
	"time"

	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

// Timer is the part of *time.Timer the scheduler needs.
type Timer interface {
	Stop() bool
}

// Scheduler owns the timers of one session. Rearm replaces every armed timer.
type Scheduler struct {
	lead      time.Duration
	notify    func(prayer.Prayer)
	now       func() time.Time
	afterFunc func(time.Duration, func()) Timer

	mu      sync.Mutex
	pending []*pendingReminder
}

type pendingReminder struct {
	prayer prayer.Prayer
	timer  Timer
}

// New returns a scheduler that calls notify lead before each prayer.
func New(lead time.Duration, notify func(prayer.Prayer)) *Scheduler {
	if lead < 0 {
		lead = 0
	}
	return &Scheduler{
		lead:   lead,
		notify: notify,
		now:    time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
}

// Rearm cancels all pending reminders, then arms one per prayer whose fire
// time (instant minus lead) is still ahead. It returns how many were armed.
func (s *Scheduler) Rearm(schedule []prayer.Prayer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	now := s.now()
	for _, p := range schedule {
		delay := p.Instant.Add(-s.lead).Sub(now)
		if delay <= 0 {
			continue
		}
		r := &pendingReminder{prayer: p}
		r.timer = s.afterFunc(delay, func() { s.fire(r) })
		s.pending = append(s.pending, r)
	}
	return len(s.pending)
}

// fire drops r from the pending set and notifies. A timer that fires after
// being cancelled finds itself gone and does nothing.
func (s *Scheduler) fire(r *pendingReminder) {
	s.mu.Lock()
	idx := -1
	for i, p := range s.pending {
		if p == r {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	s.mu.Unlock()

	s.notify(r.prayer)
}

// Cancel stops every pending reminder.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Armed returns the prayers whose reminder has not fired yet, in arming order.
func (s *Scheduler) Armed() []prayer.Prayer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]prayer.Prayer, 0, len(s.pending))
	for _, r := range s.pending {
		out = append(out, r.prayer)
	}
	return out
}

func (s *Scheduler) cancelLocked() {
	for _, r := range s.pending {
		r.timer.Stop()
	}
	s.pending = nil
}
