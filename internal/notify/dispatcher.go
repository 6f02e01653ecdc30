// Package notify runs notification passes: for every (location, language)
// group of subscribers it works out whether the next prayer falls inside the
// pre-prayer window and, if so, sends one batched notification.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/Nixie-Tech-LLC/athan/internal/push"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

const (
	DefaultWindow      = 5 * time.Minute
	DefaultPassTimeout = 2 * time.Minute
)

// SubscriptionStore is the part of db.Store a pass needs.
type SubscriptionStore interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	DeleteSubscriptions(ctx context.Context, tokens []string) (int64, error)
}

// Resolver maps a stored location string to a directory entry.
type Resolver func(location string) (locations.Location, error)

type Config struct {
	Window      time.Duration
	PassTimeout time.Duration
	Icon        string
	Link        string
}

type Dispatcher struct {
	store       SubscriptionStore
	source      timetable.Source
	resolve     Resolver
	sender      push.Sender
	window      time.Duration
	passTimeout time.Duration
	icon        string
	link        string
	now         func() time.Time
}

func NewDispatcher(store SubscriptionStore, source timetable.Source, sender push.Sender, cfg Config) *Dispatcher {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.PassTimeout <= 0 {
		cfg.PassTimeout = DefaultPassTimeout
	}
	return &Dispatcher{
		store:       store,
		source:      source,
		resolve:     locations.Resolve,
		sender:      sender,
		window:      cfg.Window,
		passTimeout: cfg.PassTimeout,
		icon:        cfg.Icon,
		link:        cfg.Link,
		now:         time.Now,
	}
}

// Window is the configured pre-prayer window.
func (d *Dispatcher) Window() time.Duration { return d.window }

// Summary counts what one pass did.
type Summary struct {
	RunID         string
	Subscriptions int
	Groups        int
	Due           int
	Sent          int
	Failed        int
	Pruned        int
	Skipped       int
	Err           error
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Int("subscriptions", s.Subscriptions).
		Int("groups", s.Groups).
		Int("due", s.Due).
		Int("sent", s.Sent).
		Int("failed", s.Failed).
		Int("pruned", s.Pruned).
		Int("skipped", s.Skipped)
}

// Trigger starts a pass in the background and returns its run ID at once.
// The pass is detached from the caller and bounded by the pass timeout.
func (d *Dispatcher) Trigger(window time.Duration) string {
	runID := uuid.NewString()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.passTimeout)
		defer cancel()
		d.runPass(ctx, runID, window)
	}()
	return runID
}

// RunEvery runs a pass with the configured window on every tick until ctx
// is done.
func (d *Dispatcher) RunEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("notification loop started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notification loop stopped")
			return
		case <-ticker.C:
			passCtx, cancel := context.WithTimeout(ctx, d.passTimeout)
			d.RunPass(passCtx, d.window)
			cancel()
		}
	}
}

// RunPass runs one notification pass. A non-positive window uses the
// configured one. Per-group failures are logged and counted, never returned.
func (d *Dispatcher) RunPass(ctx context.Context, window time.Duration) Summary {
	return d.runPass(ctx, uuid.NewString(), window)
}

func (d *Dispatcher) runPass(ctx context.Context, runID string, window time.Duration) Summary {
	if window <= 0 {
		window = d.window
	}
	logger := log.With().Str("run_id", runID).Logger()
	summary := Summary{RunID: runID}

	logger.Info().Dur("window", window).Msg("running notification pass")

	subs, err := d.store.ListSubscriptions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load subscriptions")
		summary.Err = err
		return summary
	}
	summary.Subscriptions = len(subs)
	if len(subs) == 0 {
		logger.Info().Msg("no subscriptions")
		return summary
	}

	groups := groupSubscriptions(subs)
	summary.Groups = len(groups)

	for _, g := range groups {
		d.processGroup(ctx, logger, g, window, &summary)
	}

	logger.Info().EmbedObject(summary).Msg("notification pass finished")
	return summary
}

func (d *Dispatcher) processGroup(ctx context.Context, logger zerolog.Logger, g group, window time.Duration, summary *Summary) {
	glog := logger.With().Str("location", g.Location).Str("language", g.Language).Int("tokens", len(g.Tokens)).Logger()

	defer func() {
		if r := recover(); r != nil {
			glog.Error().Interface("panic", r).Msg("group processing panicked")
			summary.Failed++
		}
	}()

	lang, ok := prayer.ParseLanguage(g.Language)
	if !ok {
		glog.Warn().Msg("skipping group with unknown language")
		summary.Skipped++
		return
	}
	loc, err := d.resolve(g.Location)
	if err != nil {
		glog.Warn().Err(err).Msg("skipping unresolved location")
		summary.Skipped++
		return
	}

	day, err := d.source.Today(ctx, loc, lang, timetable.DefaultOptions(), d.now())
	if err != nil {
		glog.Error().Err(err).Msg("failed to obtain schedule")
		summary.Failed++
		return
	}

	// The fetch may have taken a while; the due check uses the time after it.
	now := d.now()
	next := day.Next(now)
	if next == nil {
		glog.Warn().Msg("schedule has no next prayer")
		return
	}
	lead := next.Instant.Sub(now)
	if !isDue(lead, window) {
		glog.Debug().Str("next", next.Name).Dur("in", lead).Msg("not due")
		return
	}
	summary.Due++

	n := Payload(*next, lead, lang, d.icon, d.link)
	glog.Info().Str("prayer", next.Name).Dur("in", lead).Msg("sending notifications")

	resp, err := d.sender.SendMulticast(ctx, n, g.Tokens)
	if err != nil {
		glog.Error().Err(err).Msg("failed to send notifications")
		summary.Failed++
		return
	}
	summary.Sent += resp.SuccessCount

	if resp.FailureCount > 0 {
		glog.Warn().Int("failures", resp.FailureCount).Msg("some notifications failed")
	}

	invalid := resp.InvalidTokens()
	if len(invalid) == 0 {
		return
	}
	pruned, err := d.store.DeleteSubscriptions(ctx, invalid)
	if err != nil {
		glog.Error().Err(err).Int("invalid", len(invalid)).Msg("failed to prune invalid channels")
		return
	}
	summary.Pruned += int(pruned)
	glog.Info().Int64("pruned", pruned).Msg("pruned invalid channels")
}

// isDue reports whether a prayer lead away is inside the window: strictly in
// the future and at most window away.
func isDue(lead, window time.Duration) bool {
	return lead > 0 && lead <= window
}

func (s Summary) String() string {
	return fmt.Sprintf("run %s: %d subscriptions, %d groups, %d due, %d sent, %d failed, %d pruned, %d skipped",
		s.RunID, s.Subscriptions, s.Groups, s.Due, s.Sent, s.Failed, s.Pruned, s.Skipped)
}
