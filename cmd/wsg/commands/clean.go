package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsg/internal/app"
	"go.trai.ch/wsg/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Delete the artifacts of listed projects",
		Long:  "Delete the artifacts of the projects selected by --ids from the last\n'wsg list' of path. Pass --ids all to select every listed project.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetStringSlice("ids")
			yes, _ := cmd.Flags().GetBool("yes")
			ttl, err := ttlFlag(cmd)
			if err != nil {
				return err
			}

			if len(raw) == 0 {
				return domain.ErrNoIndicesSpecified
			}
			ids, err := domain.ParseIndices(raw)
			if err != nil {
				return err
			}

			return c.app.Clean(cmd.Context(), rootArg(args), ids, app.CleanOptions{
				TTL: ttl,
				Yes: yes,
			})
		},
	}

	cmd.Flags().StringSlice("ids", nil, "Indices from 'wsg list' to clean, or 'all'")
	cmd.Flags().Duration("ttl", domain.DefaultCacheTTL, "Accept a cached scan younger than this")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}
