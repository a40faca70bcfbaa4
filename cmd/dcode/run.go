package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/gatherer/natsgath"
	"github.com/dcode-oj/dcode-cli/internal/gatherer/termgath"
	"github.com/dcode-oj/dcode-cli/internal/judge"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

const defaultWorkspaceFile = "dcode.toml"

func workspaceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "workspace",
		Aliases: []string{"w"},
		Usage:   "workspace TOML file (problem id, language, code file, custom tests)",
		Value:   defaultWorkspaceFile,
	}
}

// loadWorkspace parses the workspace file and, when canonical testcases are
// needed, fetches them through the local cache.
func (a *app) loadWorkspace(ctx context.Context, path string, withCanonical bool) (*workspace.Workspace, error) {
	spec, err := workspace.ParseFile(path)
	if err != nil {
		return nil, err
	}

	var canonical []api.Testcase
	if withCanonical {
		cache, err := a.testcaseCache()
		if err != nil {
			return nil, err
		}
		var ok bool
		canonical, ok = cache.Get(spec.ProblemID)
		if !ok {
			canonical, err = a.client.Testcases(ctx, spec.ProblemID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch testcases: %w", err)
			}
			if err := cache.Put(spec.ProblemID, canonical); err != nil {
				a.log.Warn("failed to cache testcases", "error", err)
			}
		}
	}

	return spec.Build(canonical), nil
}

// sweepGatherer is the terminal progress printer, plus the NATS mirror when
// one is configured.
func (a *app) sweepGatherer() judge.Gatherer {
	gatherers := judge.MultiGatherer{termgath.New()}
	if a.cfg.NatsURL != "" {
		nc, err := nats.Connect(a.cfg.NatsURL)
		if err != nil {
			a.log.Warn("failed to connect to NATS, progress mirror disabled", "error", err)
		} else {
			gatherers = append(gatherers, natsgath.New(nc, a.cfg.ProgressSubject))
		}
	}
	return gatherers
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run your code against the problem's testcases",
		Flags: []cli.Flag{workspaceFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			user := a.verifiedUser(ctx)
			if user == nil {
				return errors.New("please login to run your code (dcode login)")
			}

			ws, err := a.loadWorkspace(ctx, cmd.String("workspace"), true)
			if err != nil {
				return err
			}

			runner := judge.NewRunner(a.client, a.log)
			results, err := runner.RunAll(ctx, ws, user, a.sweepGatherer())
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			renderResults(results, ws.Snapshot())
			return nil
		},
	}
}
