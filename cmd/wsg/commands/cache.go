package commands

import "github.com/spf13/cobra"

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached scan results",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ClearCache(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate [path]",
		Short: "Remove the cached scan of path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.InvalidateCache(cmd.Context(), rootArg(args))
		},
	})

	return cmd
}
