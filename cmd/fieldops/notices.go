package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldopshq/fieldops/internal/app"
	"github.com/fieldopshq/fieldops/internal/domain"
	"github.com/fieldopshq/fieldops/internal/format"
)

func noticeRenderer() app.ListRenderer[domain.Notice] {
	return app.ListRenderer[domain.Notice]{
		Noun: "notices",
		// Notices filter on kind rather than a workflow status.
		Statuses: domain.NoticeKinds(),
		Headers:  format.NoticeHeaders(),
		Row:      format.NoticeRow,
	}
}

func newNoticesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notices",
		Short: "Browse notices",
	}
	cmd.AddCommand(newNoticesListCmd(d), newNoticesReadCmd(d))
	return cmd
}

func newNoticesListCmd(d *deps) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notices",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := d.Store()
			if err != nil {
				return err
			}
			u := app.NewListUseCase(store.ListNotices, domain.NoticeAccessors(), noticeRenderer())
			return u.Execute(cmd.Context(), flags.input(d.cfg.PageSize), cmd.OutOrStdout())
		},
	}
	registerListFlags(cmd, &flags, domain.NoticeKinds(), domain.NoticeSortKeys(), domain.NoticeSortUnreadFirst, d.cfg.DefaultFormat)
	return cmd
}

func newNoticesReadCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notice read",
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
			u := app.NewMarkNoticeReadUseCase(store, store, d.cfg.Offline)
			return u.Execute(cmd.Context(), id, cmd.OutOrStdout())
		},
	}
}
