package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/internal/judge"
)

func submitCmd() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "submit your solution for grading",
		Flags: []cli.Flag{workspaceFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			user := a.verifiedUser(ctx)
			if user == nil {
				return errors.New("please login to submit your code (dcode login)")
			}

			ws, err := a.loadWorkspace(ctx, cmd.String("workspace"), false)
			if err != nil {
				return err
			}

			view := a.historyView()
			submitter := judge.NewSubmitter(a.client, view, a.log)
			outcome, err := submitter.Submit(ctx, ws, user)
			if err != nil {
				return fmt.Errorf("submit failed: %w", err)
			}

			switch {
			case outcome.Accepted:
				fmt.Println(color.GreenString("✅ %s", outcome.Message))
			case outcome.Warning:
				fmt.Println(color.YellowString("⚠ %s", outcome.Message))
			default:
				fmt.Println(color.RedString("❌ %s", outcome.Message))
			}

			// The submitter already refreshed the history; show the top of it.
			subs, err := view.Submissions(ctx, ws.ProblemID, user.UserID)
			if err == nil && len(subs) > 0 {
				fmt.Println()
				renderHistory(subs)
			}
			return nil
		},
	}
}
