package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/athan/internal/aladhan"
	"github.com/Nixie-Tech-LLC/athan/internal/locations"
	"github.com/Nixie-Tech-LLC/athan/internal/model"
	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
	"github.com/Nixie-Tech-LLC/athan/internal/reminder"
	"github.com/Nixie-Tech-LLC/athan/internal/timetable"
)

type options struct {
	location   string
	lang       string
	lead       time.Duration
	method     string
	school     string
	aladhanURL string
	timeout    time.Duration
}

// session is what every command resolves its flags into.
type session struct {
	loc    locations.Location
	lang   prayer.Language
	opts   timetable.Options
	source timetable.Source
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Prayer times with local reminders",
		Long:  "Print today's prayer times for a city and remind ahead of each prayer until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session()
			if err != nil {
				return err
			}
			return watch(cmd.Context(), cmd.OutOrStdout(), s, o.lead, time.Now)
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.location, "location", "", `City and country, e.g. "Cairo, Egypt" (required)`)
	pf.StringVar(&o.lang, "lang", "en", "Language: ar or en")
	pf.StringVar(&o.method, "method", "default", "Calculation method: default, mwl, isna, egypt, makkah, karachi, tehran, jafari")
	pf.StringVar(&o.school, "school", "standard", "Juristic method: standard or hanafi")
	pf.StringVar(&o.aladhanURL, "aladhan-url", aladhan.DefaultBaseURL, "Prayer times API base URL")
	pf.DurationVar(&o.timeout, "timeout", 10*time.Second, "HTTP timeout")
	cmd.Flags().DurationVar(&o.lead, "lead", 5*time.Minute, "How long before each prayer to remind")
	_ = cmd.MarkPersistentFlagRequired("location")

	cmd.AddCommand(newNextCmd(o))
	return cmd
}

func (o *options) session() (*session, error) {
	lang, ok := prayer.ParseLanguage(o.lang)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", o.lang)
	}
	loc, err := locations.Resolve(o.location)
	if err != nil {
		return nil, err
	}

	settings := model.DefaultSettings()
	settings.CalculationMethod = o.method
	settings.JuristicMethod = o.school
	settings.Language = string(lang)
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := aladhan.NewClient(o.timeout)
	client.BaseURL = o.aladhanURL

	return &session{
		loc:    loc,
		lang:   lang,
		opts:   timetable.FromSettings(settings),
		source: timetable.NewService(client),
	}, nil
}

// watch prints the schedule, arms reminders and refetches after each local
// midnight until ctx is done.
func watch(ctx context.Context, out io.Writer, s *session, lead time.Duration, now func() time.Time) error {
	sched := reminder.New(lead, func(p prayer.Prayer) {
		fmt.Fprintf(out, "%s  %s at %s (%s)\n", time.Now().Format("15:04:05"), p.DisplayName, p.FormattedTime, lead)
	})
	defer sched.Cancel()

	for {
		day, err := s.source.Today(ctx, s.loc, s.lang, s.opts, now())
		if err != nil {
			return err
		}
		printDay(out, day, s.lang, now())
		armed := sched.Rearm(day.Schedule)
		fmt.Fprintf(out, "%d reminders armed, %s before each prayer\n", armed, lead)

		midnight := time.Unix(day.Anchor.Timestamp, 0).In(day.Zone).AddDate(0, 0, 1)
		timer := time.NewTimer(midnight.Sub(now()) + time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func printDay(out io.Writer, day *timetable.Day, lang prayer.Language, now time.Time) {
	fmt.Fprintf(out, "%s  %s  %s\n", day.Location.Display(lang), day.Readable, day.Hijri)

	next := day.Next(now)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, p := range day.Schedule {
		marker := ""
		if next != nil && p.Name == next.Name && p.Instant.Equal(next.Instant) {
			marker = "<- next"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.DisplayName, p.FormattedTime, marker)
	}
	_ = tw.Flush()

	if next != nil {
		fmt.Fprintf(out, "next: %s in %s\n", next.DisplayName, prayer.FormatCountdown(next.Until(now)))
	}
}
