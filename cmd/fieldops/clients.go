package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func clientRenderer() app.ListRenderer[domain.Client] {
	return app.ListRenderer[domain.Client]{
		Noun:     "clients",
		Statuses: domain.ClientStatuses(),
		Headers:  format.ClientHeaders(),
		Row:      format.ClientRow,
	}
}

func newClientsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage the client book",
	}
	cmd.AddCommand(newClientsListCmd(d), newClientsShowCmd(d), newClientsAddCmd(d), newClientsSetStatusCmd(d))
	return cmd
}

func newClientsShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			client, err := store.GetClientByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			format.WriteTable(cmd.OutOrStdout(), format.ClientHeaders(), [][]string{format.ClientRow(*client)})
			return nil
		},
	}
}

func newClientsListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListClients, domain.ClientAccessors(), clientRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.ClientStatuses(), domain.ClientSortKeys(), domain.ClientSortNameAZ, d.cfg.DefaultFormat)
	return cmd
}

func newClientsAddCmd(d *deps) *cobra.Command {
	var name, email, phone, address string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Client{
				Name:    name,
				Email:   optString(email),
				Phone:   optString(phone),
				Address: optString(address),
				Status:  domain.ClientLead,
			}
			u := app.NewAddUseCase(app.EntityClient, store.InsertClient, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&address, "address", "", "Billing address")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newClientsSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a client to a new status",
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
				_, err := domain.ParseClientStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseClientStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateClientStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityClient, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
