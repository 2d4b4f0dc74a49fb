package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fieldops version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fieldops v%s\n", version.String())
		},
	}
}
