package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func projectRenderer() app.ListRenderer[domain.Project] {
	return app.ListRenderer[domain.Project]{
		Noun:     "projects",
		Statuses: domain.ProjectStatuses(),
		Headers:  format.ProjectHeaders(),
		Row:      format.ProjectRow,
	}
}

func newProjectsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage multi-visit projects",
	}
	cmd.AddCommand(newProjectsListCmd(d), newProjectsAddCmd(d), newProjectsSetStatusCmd(d))
	return cmd
}

func newProjectsListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListProjects, domain.ProjectAccessors(), projectRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.ProjectStatuses(), domain.ProjectSortKeys(), domain.ProjectSortNewest, d.cfg.DefaultFormat)
	return cmd
}

func newProjectsAddCmd(d *deps) *cobra.Command {
	var name, summary, starts string
	var clientID int64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := parseDateFlag("starts", starts)
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Project{
				ClientID: clientID,
				Name:     name,
				Summary:  optString(summary),
				Status:   domain.ProjectDraft,
				StartsAt: startsAt,
			}
			u := app.NewAddUseCase(app.EntityProject, store.InsertProject, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Owning client ID")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&summary, "summary", "", "What the project covers")
	cmd.Flags().StringVar(&starts, "starts", "", "Start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectsSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a project to a new status",
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
				_, err := domain.ParseProjectStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseProjectStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateProjectStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityProject, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}
