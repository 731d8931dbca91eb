package users

import (
	"fmt"
	"time"

	"github.com/bornholm/todoshare/internal/command/common"
	"github.com/bornholm/todoshare/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername = "username"
	flagToken    = "token"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage the share links of the users",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the users and their share tokens",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := setup.GetUserManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			links, err := users.ListUsers(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			tw := common.NewTableWriter(cCtx.App.Writer)

			fmt.Fprintln(tw, "TOKEN\tUSERNAME\tCREATED AT")
			for _, l := range links {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Token, l.Username, l.CreatedAt.Format(time.RFC3339))
			}

			return errors.WithStack(tw.Flush())
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a user and print its share token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagUsername,
				Aliases:  []string{"u"},
				Usage:    "Name of the user",
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := setup.GetUserManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			link, err := users.CreateUser(ctx, cCtx.String(flagUsername))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cCtx.App.Writer, link.Token)

			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Revoke the share link of a user, keeping its todos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagToken,
				Aliases:  []string{"t"},
				Usage:    "Share token of the user",
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := setup.GetUserManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := users.DeleteUser(ctx, cCtx.String(flagToken)); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
