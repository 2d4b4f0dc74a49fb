package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func propertyRenderer() app.ListRenderer[domain.Property] {
	return app.ListRenderer[domain.Property]{
		Noun:     "properties",
		Statuses: domain.PropertyStatuses(),
		Headers:  format.PropertyHeaders(),
		Row:      format.PropertyRow,
	}
}

func newPropertiesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage serviced properties",
	}
	cmd.AddCommand(newPropertiesListCmd(d), newPropertiesAddCmd(d), newPropertiesSetStatusCmd(d))
	return cmd
}

func newPropertiesListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListProperties, domain.PropertyAccessors(), propertyRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.PropertyStatuses(), domain.PropertySortKeys(), domain.PropertySortAddressAZ, d.cfg.DefaultFormat)
	return cmd
}

func newPropertiesAddCmd(d *deps) *cobra.Command {
	var address, city, nickname string
	var clientID int64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Property{
				ClientID: clientID,
				Address:  address,
				City:     city,
				Nickname: optString(nickname),
				Status:   domain.PropertyActive,
			}
			u := app.NewAddUseCase(app.EntityProperty, store.InsertProperty, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Owning client ID")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Short label, e.g. lake house")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func newPropertiesSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a property to a new status",
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
				_, err := domain.ParsePropertyStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParsePropertyStatus(status)
				if err != nil {
					return err
				}
				return store.UpdatePropertyStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityProperty, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
