package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
)

func problemsCmd() *cli.Command {
	return &cli.Command{
		Name:  "problems",
		Usage: "list all problems",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			problems, err := a.client.ListProblems(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch problems: %w", err)
			}
			if len(problems) == 0 {
				fmt.Println("No problems available.")
				return nil
			}

			renderProblems(problems)
			return nil
		},
	}
}

func problemCmd() *cli.Command {
	return &cli.Command{
		Name:      "problem",
		Usage:     "show one problem",
		ArgsUsage: "<problem-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("expected a numeric problem id, got %q", cmd.Args().First())
			}

			problem, err := a.client.Problem(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch problem %d: %w", id, err)
			}

			renderProblem(problem)
			return nil
		},
	}
}
