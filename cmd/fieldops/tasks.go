package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func taskRenderer() app.ListRenderer[domain.Task] {
	return app.ListRenderer[domain.Task]{
		Noun:     "tasks",
		Statuses: domain.TaskStatuses(),
		Headers:  format.TaskHeaders(),
		Row:      format.TaskRow,
	}
}

func newTasksCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage work tasks",
	}
	cmd.AddCommand(newTasksListCmd(d), newTasksAddCmd(d), newTasksSetStatusCmd(d), newTasksCompleteCmd(d))
	return cmd
}

func newTasksListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListTasks, domain.TaskAccessors(), taskRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.TaskStatuses(), domain.TaskSortKeys(), domain.TaskSortDueEarliest, d.cfg.DefaultFormat)
	return cmd
}

func newTasksAddCmd(d *deps) *cobra.Command {
	var title, details, priority, due string
	var projectID int64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueAt, err := parseDateFlag("due", due)
			if err != nil {
				return err
			}
			parsedPriority, err := domain.ParseTaskPriority(priority)
			if err != nil {
				return err
			}
			store, err := d.Store()
			if err != nil {
				return err
			}
			record := domain.Task{
				Title:    title,
				Details:  optString(details),
				Status:   domain.TaskBacklog,
				Priority: parsedPriority,
				DueAt:    dueAt,
			}
			if projectID > 0 {
				record.ProjectID = &projectID
			}
			u := app.NewAddUseCase(app.EntityTask, store.InsertTask, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), &record, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "What needs doing")
	cmd.Flags().StringVar(&details, "details", "", "Extra context")
	cmd.Flags().StringVar(&priority, "priority", domain.PriorityMedium.String(), "Priority: low, medium, high")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Parent project ID")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksSetStatusCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a task to a new status",
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
				_, err := domain.ParseTaskStatus(status)
				return err
			}
			apply := func(ctx context.Context, id int64, status string) error {
				parsed, err := domain.ParseTaskStatus(status)
				if err != nil {
					return err
				}
				return store.UpdateTaskStatus(ctx, id, parsed)
			}
			u := app.NewSetStatusUseCase(app.EntityTask, validate, apply, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, args[1], cmd.OutOrStdout())
		},
	}
}

func newTasksCompleteCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task completed",
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
			u := app.NewCompleteTaskUseCase(store, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, cmd.OutOrStdout())
		},
	}
}
