package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/environment"
	"github.com/dcode-oj/dcode-cli/internal/history"
	"github.com/dcode-oj/dcode-cli/internal/platform"
	"github.com/dcode-oj/dcode-cli/internal/session"
	"github.com/dcode-oj/dcode-cli/internal/testcache"
	"github.com/dcode-oj/dcode-cli/internal/xdg"
)

const appName = "dcode"

func main() {
	root := &cli.Command{
		Name:  appName,
		Usage: "terminal client for the Dcode judge platform",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "api-base",
				Usage: "backend origin (overrides DCODE_API_BASE)",
			},
		},
		Commands: []*cli.Command{
			loginCmd(),
			logoutCmd(),
			registerCmd(),
			problemsCmd(),
			problemCmd(),
			runCmd(),
			submitCmd(),
			historyCmd(),
			reviewCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// app bundles everything a command needs: config, session store, and the
// backend client seeded with the persisted session cookie.
type app struct {
	cfg      *environment.EnvConfig
	dirs     *xdg.Dirs
	sessions *session.Store
	client   *platform.Client
	log      *slog.Logger
}

func newApp(cmd *cli.Command) (*app, error) {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)

	cfg := environment.ReadEnvConfig()
	if base := cmd.String("api-base"); base != "" {
		cfg.APIBase = base
	}

	client, err := platform.New(cfg.APIBase, log)
	if err != nil {
		return nil, err
	}

	dirs := xdg.New(appName)
	sessions := session.NewStore(dirs)

	sess, err := sessions.Load()
	if err != nil {
		log.Warn("ignoring unreadable session file", "error", err)
	}
	client.SetSessionCookie(sess.Cookie())

	return &app{
		cfg:      cfg,
		dirs:     dirs,
		sessions: sessions,
		client:   client,
		log:      log,
	}, nil
}

// verifiedUser checks the session against the backend. A nil user means
// anonymous: either no cookie, an expired one, or an unreachable auth
// service. Any verify failure counts as logged out.
func (a *app) verifiedUser(ctx context.Context) *api.User {
	user, err := a.client.VerifyAuth(ctx)
	if err != nil {
		a.log.Debug("auth verification failed", "error", err)
		return nil
	}
	return user
}

func (a *app) historyView() *history.View {
	return history.NewView(a.client)
}

func (a *app) testcaseCache() (*testcache.Cache, error) {
	return testcache.New(a.dirs.CacheDir())
}
