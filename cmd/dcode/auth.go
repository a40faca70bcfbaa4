package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/platform"
)

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and store the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "account email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "account password", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			user, err := a.client.Login(ctx, api.LoginReq{
				Email:    cmd.String("email"),
				Password: cmd.String("password"),
			})
			if err != nil {
				return fmt.Errorf("login failed: %s", platform.UserMessage(err, "Login failed"))
			}

			if err := a.sessions.Save(user, a.client.SessionCookie()); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Username)
			if user.Role.IsAdmin() {
				fmt.Println("This account has admin access; problem management lives in the web admin area.")
			}
			return nil
		},
	}
}

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "log out and forget the session",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			// Server-side invalidation is best-effort; the local session is
			// dropped either way.
			if err := a.client.Logout(ctx); err != nil {
				a.log.Warn("backend logout failed", "error", err)
			}
			if err := a.sessions.Clear(); err != nil {
				return err
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}

func registerCmd() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Usage: "display name", Required: true},
			&cli.StringFlag{Name: "email", Usage: "account email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "account password", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			user, err := a.client.Register(ctx, api.RegisterReq{
				Username: cmd.String("username"),
				Email:    cmd.String("email"),
				Password: cmd.String("password"),
			})
			if err != nil {
				return fmt.Errorf("registration failed: %s", platform.UserMessage(err, "Registration failed"))
			}

			if user != nil {
				fmt.Printf("Registered %s; run `dcode login` to start a session\n", user.Username)
			} else {
				fmt.Println("Registered; run `dcode login` to start a session")
			}
			return nil
		},
	}
}
