package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func requestRenderer() app.ListRenderer[domain.Request] {
	return app.ListRenderer[domain.Request]{
		Noun:     "requests",
		Statuses: domain.RequestStatuses(),
		Headers:  format.RequestHeaders(),
		Row:      format.RequestRow,
	}
}

func newRequestsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage incoming service requests",
	}
	cmd.AddCommand(newRequestsListCmd(d), newRequestsAddCmd(d), newRequestsSetStatusCmd(d))
	return cmd
}

func newRequestsListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListRequests, domain.RequestAccessors(), requestRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.RequestStatuses(), domain.RequestSortKeys(), domain.RequestSortNewest, d.cfg.DefaultFormat)
	return cmd
}

func newRequestsAddCmd(d *deps) *cobra.Command {
	var client, title, description, preferred string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new request",
		RunE: func(cmd *cobra.Command, args []string) error {
			preferredAt, err := parseDateFlag("preferred", preferred)
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Request{
				ClientName:  client,
				Title:       title,
				Description: optString(description),
				Status:      domain.RequestNew,
				PreferredAt: preferredAt,
			}
			u := app.NewAddUseCase(app.EntityRequest, store.InsertRequest, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&title, "title", "", "What the client is asking for")
	cmd.Flags().StringVar(&description, "description", "", "Free-form details")
	cmd.Flags().StringVar(&preferred, "preferred", "", "Preferred visit date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRequestsSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a request to a new status",
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
				_, err := domain.ParseRequestStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseRequestStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateRequestStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityRequest, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
