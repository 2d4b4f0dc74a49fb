package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func bookingRenderer() app.ListRenderer[domain.Booking] {
	return app.ListRenderer[domain.Booking]{
		Noun:     "bookings",
		Statuses: domain.BookingStatuses(),
		Headers:  format.BookingHeaders(),
		Row:      format.BookingRow,
	}
}

func newBookingsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage scheduled visits",
	}
	cmd.AddCommand(newBookingsListCmd(d), newBookingsAddCmd(d), newBookingsSetStatusCmd(d))
	return cmd
}

func newBookingsListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListBookings, domain.BookingAccessors(), bookingRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.BookingStatuses(), domain.BookingSortKeys(), domain.BookingSortSoonest, d.cfg.DefaultFormat)
	return cmd
}

func newBookingsAddCmd(d *deps) *cobra.Command {
	var client, service, notes, scheduled string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduledAt, err := parseDateFlag("scheduled", scheduled)
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Booking{
				ClientName:  client,
				ServiceType: service,
				Notes:       optString(notes),
				Status:      domain.BookingPending,
				ScheduledAt: scheduledAt,
			}
			u := app.NewAddUseCase(app.EntityBooking, store.InsertBooking, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&service, "service", "", "Service type, e.g. lawn care")
	cmd.Flags().StringVar(&notes, "notes", "", "Crew notes")
	cmd.Flags().StringVar(&scheduled, "scheduled", "", "Visit date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

func newBookingsSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a booking to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			validate := func(status string) error {
				_, err := domain.ParseBookingStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseBookingStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateBookingStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityBooking, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
