package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	errLoginMethod   = errors.New("set exactly one of --email or --provider")
	errLoginTimedOut = errors.New("sign-in was not completed in time")
)

// listen starts the redirect listener. Replaced in tests.
var listen = func(ctx context.Context, c *cli, e *env) (stop func(), err error) {
	appInfo, err := service.NewAppInfoService(c.buildInfo, c.logger)
	if err != nil {
		return nil, err
	}
	listener, err := client.NewCallbackListener(e.auth, appInfo, e.cfg.Auth, c.logger)
	if err != nil {
		return nil, err
	}
	if err = listener.Start(ctx); err != nil {
		return nil, err
	}
	return listener.Stop, nil
}

var copyToClipboard = clipboard.WriteAll

func (c *cli) loginCmd() *cobra.Command {
	var (
		email    string
		provider string
		wait     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a magic link or an OAuth provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "") == (provider == "") {
				return errLoginMethod
			}

			e, err := c.connect(cmd)
			if err != nil {
				return err
			}
			if !e.auth.Configured() {
				return errors.New(service.MsgNotConfigured)
			}

			out := cmd.OutOrStdout()

			// the listener must be up before the link can be followed
			stop, listenErr := listen(cmd.Context(), c, e)
			if listenErr != nil {
				c.logger.Debug().Err(listenErr).Msg("redirect listener is not running")
			} else {
				defer stop()
			}

			signedIn := make(chan struct{}, 1)
			unsubscribe := e.auth.Subscribe(func(s *models.Session) {
				if s != nil {
					select {
					case signedIn <- struct{}{}:
					default:
					}
				}
			})
			defer unsubscribe()

			ctx, cancel := c.withTimeout(cmd)
			if email != "" {
				err = e.auth.SignInWithEmail(ctx, email)
				cancel()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Check your email for a sign-in link.")
			} else {
				var authURL string
				authURL, err = e.auth.SignInWithOAuth(ctx, provider)
				cancel()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Open this URL to sign in:\n%s\n", authURL)
				if copyToClipboard(authURL) == nil {
					fmt.Fprintln(out, "(copied to clipboard)")
				}
			}

			if listenErr != nil {
				fmt.Fprintln(out, "No callback address is configured, finish sign-in in the TUI client.")
				return nil
			}

			select {
			case <-signedIn:
			case <-time.After(wait):
				return errLoginTimedOut
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			fmt.Fprintf(out, "Signed in as %s\n", userLabel(e.auth.User()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "send a magic link to this address")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "sign in with this OAuth provider")
	cmd.Flags().DurationVar(&wait, "wait", 5*time.Minute, "how long to wait for the link to be followed")
	return cmd
}

func userLabel(u *models.SessionUser) string {
	switch {
	case u == nil:
		return "unknown user"
	case u.Email != "":
		return u.Email
	default:
		return u.ID
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.connect(cmd)
			if err != nil {
				return err
			}
			if e.auth.Session() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}

			ctx, cancel := c.withTimeout(cmd)
			defer cancel()
			if err = e.auth.SignOut(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the server sees for the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.connect(cmd)
			if err != nil {
				return err
			}
			if !e.auth.Configured() {
				return errors.New(service.MsgNotConfigured)
			}
			if e.auth.Session() == nil {
				return errNotSignedIn
			}

			ctx, cancel := c.withTimeout(cmd)
			defer cancel()
			user, err := e.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id: %s\n", user.ID)
			if user.Email != "" {
				fmt.Fprintf(out, "email: %s\n", user.Email)
			}
			if exp := e.auth.Session().Expiry(); !exp.IsZero() {
				fmt.Fprintf(out, "session expires: %s\n", exp.Local().Format(timeLayout))
			}
			return nil
		},
	}
}
