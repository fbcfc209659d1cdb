package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

var errNotSignedIn = errors.New("not signed in, run \"notesctl login\" first")

type cli struct {
	cfgPath string
	verbose bool
	timeout time.Duration

	open      opener
	buildInfo models.AppBuildInfo

	logger *logger.Logger
	env    *env
}

func newCLI(open opener, buildInfo models.AppBuildInfo) *cli {
	return &cli{open: open, buildInfo: buildInfo, logger: logger.Nop()}
}

// execute runs one invocation and releases the environment it opened,
// whether the command succeeded or not.
func (c *cli) execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	defer func() {
		if err := c.closeEnv(); err != nil {
			c.logger.Err(err).Msg("close environment")
		}
	}()
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "notesctl",
		Short:        "Manage notes stored in a Supabase project",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = logger.New(cmd.ErrOrStderr(), "notesctl")
			if c.verbose {
				logger.SetLevel("debug")
			} else {
				logger.SetLevel("warn")
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.cfgPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "timeout of backend requests")

	root.AddCommand(
		c.listCmd(),
		c.addCmd(),
		c.editCmd(),
		c.archiveCmd(),
		c.rmCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.exportCmd(),
		c.versionCmd(),
	)

	return root
}

// connect opens the environment once per invocation.
func (c *cli) connect(cmd *cobra.Command) (*env, error) {
	if c.env != nil {
		return c.env, nil
	}

	e, err := c.open(cmd.Context(), c.cfgPath, c.logger)
	if err != nil {
		return nil, err
	}
	c.env = e
	return e, nil
}

// connectNotes also loads the notes visible to the current session.
func (c *cli) connectNotes(cmd *cobra.Command) (*env, error) {
	e, err := c.connect(cmd)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(cmd)
	defer cancel()
	if !e.notes.Refresh(ctx) {
		return nil, notesError(e.notes, service.MsgFailedToLoad)
	}
	return e, nil
}

func (c *cli) withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

func (c *cli) closeEnv() error {
	if c.env == nil || c.env.close == nil {
		return nil
	}
	err := c.env.close()
	c.env = nil
	return err
}

// notesError returns the banner message of the last failed operation.
func notesError(notes service.ClientNotesService, fallback string) error {
	if msg := notes.Snapshot().Err; msg != "" {
		return errors.New(msg)
	}
	return errors.New(fallback)
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.Version)
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.Date)
			fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.Commit)
		},
	}
}
