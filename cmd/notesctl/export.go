package main

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/export"
	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	var (
		dir   string
		query string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write notes as markdown files with YAML frontmatter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.connectNotes(cmd)
			if err != nil {
				return err
			}

			paths, err := export.WriteDir(dir, visibleNotes(e, query))
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if err != nil {
				return err
			}

			c.logger.Info().Int("count", len(paths)).Str("dir", dir).Msg("notes exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "notes", "target directory")
	cmd.Flags().StringVarP(&query, "search", "s", "", "only export matching notes")
	return cmd
}
