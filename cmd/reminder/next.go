package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/athan/internal/prayer"
)

func newNextCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session()
			if err != nil {
				return err
			}

			now := time.Now()
			day, err := s.source.Today(cmd.Context(), s.loc, s.lang, s.opts, now)
			if err != nil {
				return err
			}
			next := day.Next(now)
			if next == nil {
				return fmt.Errorf("no prayers in schedule")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", next.DisplayName, next.FormattedTime, prayer.FormatCountdown(next.Until(now)))
			return nil
		},
	}
}
