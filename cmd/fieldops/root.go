package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/version"
)

// NewRootCmd assembles the fieldops command tree.
func NewRootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldops",
		Short:         "Field service operations from the terminal",
		Long:          "fieldops keeps requests, bookings, clients, and the rest of a field service operation in a local cache you can filter, search, and sort.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.AddCommand(
		newRequestsCmd(d),
		newBookingsCmd(d),
		newClientsCmd(d),
		newPropertiesCmd(d),
		newProjectsCmd(d),
		newTasksCmd(d),
		newInvoicesCmd(d),
		newNoticesCmd(d),
		newSyncCmd(d),
		newTUICmd(d),
		newVersionCmd(),
	)
	return root
}
