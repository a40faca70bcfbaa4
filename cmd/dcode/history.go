package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/internal/history"
)

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "show your submissions for a problem",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "problem",
				Aliases:  []string{"p"},
				Usage:    "numeric problem id",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "show",
				Usage: "drill down into one submission by its position in the list",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			user := a.verifiedUser(ctx)
			if user == nil {
				return errors.New("please login to view your submissions (dcode login)")
			}

			problemID := int(cmd.Int("problem"))
			subs, err := a.historyView().Submissions(ctx, problemID, user.UserID)
			if err != nil {
				return fmt.Errorf("failed to fetch submissions: %w", err)
			}
			if len(subs) == 0 {
				fmt.Println("No submissions yet. Solve the problem to see your submissions here.")
				return nil
			}

			if pos := int(cmd.Int("show")); pos > 0 {
				sub, err := history.Select(subs, pos-1)
				if err != nil {
					return err
				}
				renderSubmission(sub)
				return nil
			}

			renderHistory(subs)
			return nil
		},
	}
}
