package todos

import (
	"fmt"
	"time"

	"github.com/bornholm/todoshare/internal/command/common"
	"github.com/bornholm/todoshare/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagDeleted = "deleted"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "todos",
		Usage: "Inspect and maintain the todo lists",
		Subcommands: []*cli.Command{
			listCommand(),
			purgeCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the todos of every owner",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDeleted,
				Usage: "List the recently deleted todos instead, dropping the expired ones",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			todos, err := setup.GetTodoManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			tw := common.NewTableWriter(cCtx.App.Writer)

			if cCtx.Bool(flagDeleted) {
				entries, err := todos.ListRecentlyDeleted(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				fmt.Fprintln(tw, "ID\tOWNER\tTEXT\tDELETED BY\tDELETED AT")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.OwnerID, e.Text, e.DeletedBy, e.DeletedAt.Format(time.RFC3339))
				}

				return errors.WithStack(tw.Flush())
			}

			all, err := todos.ListAll(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(tw, "ID\tOWNER\tTEXT\tCOMPLETED\tCREATED BY\tCREATED AT")
			for _, t := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\n", t.ID, t.OwnerID, t.Text, t.Completed, t.CreatorID, t.CreatedAt.Format(time.RFC3339))
			}

			return errors.WithStack(tw.Flush())
		},
	}
}

func purgeCommand() *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "Remove the expired entries of the deleted todos log",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			todos, err := setup.GetTodoManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			purged, err := todos.PurgeDeleted(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "%d expired entries purged\n", purged)

			return nil
		},
	}
}
