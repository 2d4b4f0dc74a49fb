package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func invoiceRenderer() app.ListRenderer[domain.Invoice] {
	return app.ListRenderer[domain.Invoice]{
		Noun:     "invoices",
		Statuses: domain.InvoiceStatuses(),
		Headers:  format.InvoiceHeaders(),
		Row:      format.InvoiceRow,
	}
}

func newInvoicesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Manage invoices",
	}
	cmd.AddCommand(newInvoicesListCmd(d), newInvoicesAddCmd(d), newInvoicesSetStatusCmd(d))
	return cmd
}

func newInvoicesListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListInvoices, domain.InvoiceAccessors(), invoiceRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.InvoiceStatuses(), domain.InvoiceSortKeys(), domain.InvoiceSortNewest, d.cfg.DefaultFormat)
	return cmd
}

func newInvoicesAddCmd(d *deps) *cobra.Command {
	var client, number, due string
	var totalCents int64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Draft an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueAt, err := parseDateFlag("due", due)
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Invoice{
				ClientName: client,
				Number:     number,
				Status:     domain.InvoiceDraft,
				TotalCents: totalCents,
				IssuedAt:   time.Now().UTC(),
				DueAt:      dueAt,
			}
			u := app.NewAddUseCase(app.EntityInvoice, store.InsertInvoice, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&number, "number", "", "Invoice number, e.g. INV-0042")
	cmd.Flags().Int64Var(&totalCents, "total-cents", 0, "Total in cents")
	cmd.Flags().StringVar(&due, "due", "", "Payment due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

func newInvoicesSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an invoice to a new status",
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
				_, err := domain.ParseInvoiceStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseInvoiceStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateInvoiceStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityInvoice, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
