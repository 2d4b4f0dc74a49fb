package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
)

func newSyncCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Apply changes queued while offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewSyncUseCase(store, app.NewStoreApplier(store), d.logger)
			return u.Execute(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
