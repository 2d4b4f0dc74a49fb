package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
	"github.com/fieldopshq/fieldops/internal/tui"
)

const tuiLong = `Browse one collection interactively. Status tabs carry badge
counts for the whole collection, the search box filters as you type,
and "s" cycles through the sort keys.`

func newTUICmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:       "tui [collection]",
		Short:     "Browse a collection interactively",
		Long:      tuiLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"requests", "bookings", "clients", "properties", "projects", "tasks", "invoices", "notices"},
		RunE: func(cmd *cobra.Command, args []string) error {
			collectionName := "requests"
			if len(args) == 1 {
				collectionName = args[0]
			}
			store, err := d.Store()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch collectionName {
			case "requests":
				return tui.Run(ctx, tui.Source[domain.Request]{
					Title:     "Requests",
					Statuses:  domain.RequestStatuses(),
					SortKeys:  domain.RequestSortKeys(),
					Accessors: domain.RequestAccessors(),
					Fetch:     store.ListRequests,
					Headers:   format.RequestHeaders(),
					Row:       format.RequestRow,
				})
			case "bookings":
				return tui.Run(ctx, tui.Source[domain.Booking]{
					Title:     "Bookings",
					Statuses:  domain.BookingStatuses(),
					SortKeys:  domain.BookingSortKeys(),
					Accessors: domain.BookingAccessors(),
					Fetch:     store.ListBookings,
					Headers:   format.BookingHeaders(),
					Row:       format.BookingRow,
				})
			case "clients":
				return tui.Run(ctx, tui.Source[domain.Client]{
					Title:     "Clients",
					Statuses:  domain.ClientStatuses(),
					SortKeys:  domain.ClientSortKeys(),
					Accessors: domain.ClientAccessors(),
					Fetch:     store.ListClients,
					Headers:   format.ClientHeaders(),
					Row:       format.ClientRow,
				})
			case "properties":
				return tui.Run(ctx, tui.Source[domain.Property]{
					Title:     "Properties",
					Statuses:  domain.PropertyStatuses(),
					SortKeys:  domain.PropertySortKeys(),
					Accessors: domain.PropertyAccessors(),
					Fetch:     store.ListProperties,
					Headers:   format.PropertyHeaders(),
					Row:       format.PropertyRow,
				})
			case "projects":
				return tui.Run(ctx, tui.Source[domain.Project]{
					Title:     "Projects",
					Statuses:  domain.ProjectStatuses(),
					SortKeys:  domain.ProjectSortKeys(),
					Accessors: domain.ProjectAccessors(),
					Fetch:     store.ListProjects,
					Headers:   format.ProjectHeaders(),
					Row:       format.ProjectRow,
				})
			case "tasks":
				return tui.Run(ctx, tui.Source[domain.Task]{
					Title:     "Tasks",
					Statuses:  domain.TaskStatuses(),
					SortKeys:  domain.TaskSortKeys(),
					Accessors: domain.TaskAccessors(),
					Fetch:     store.ListTasks,
					Headers:   format.TaskHeaders(),
					Row:       format.TaskRow,
				})
			case "invoices":
				return tui.Run(ctx, tui.Source[domain.Invoice]{
					Title:     "Invoices",
					Statuses:  domain.InvoiceStatuses(),
					SortKeys:  domain.InvoiceSortKeys(),
					Accessors: domain.InvoiceAccessors(),
					Fetch:     store.ListInvoices,
					Headers:   format.InvoiceHeaders(),
					Row:       format.InvoiceRow,
				})
			case "notices":
				return tui.Run(ctx, tui.Source[domain.Notice]{
					Title:     "Notices",
					Statuses:  domain.NoticeKinds(),
					SortKeys:  domain.NoticeSortKeys(),
					Accessors: domain.NoticeAccessors(),
					Fetch:     store.ListNotices,
					Headers:   format.NoticeHeaders(),
					Row:       format.NoticeRow,
				})
			default:
				return fmt.Errorf("unknown collection %q", collectionName)
			}
		},
	}
}
