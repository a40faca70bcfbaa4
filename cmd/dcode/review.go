package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/internal/judge"
)

func reviewCmd() *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "request an AI review of your code",
		Flags: []cli.Flag{workspaceFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ws, err := a.loadWorkspace(ctx, cmd.String("workspace"), false)
			if err != nil {
				return err
			}

			user := a.verifiedUser(ctx)
			if user == nil {
				return errors.New("please login to use AI review (dcode login)")
			}

			reviewer := judge.NewReviewer(a.client, a.log)
			review, err := reviewer.Review(ctx, ws, user)
			if err != nil {
				return err
			}

			fmt.Println("AI Review")
			fmt.Println()
			fmt.Println(review)
			return nil
		},
	}
}
