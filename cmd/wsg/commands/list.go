package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/wsg/internal/app"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [path]",
		Aliases: []string{"ls"},
		Short:   "List deletable build artifacts below path",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, _ := cmd.Flags().GetStringSlice("include")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			ttl, err := ttlFlag(cmd)
			if err != nil {
				return err
			}

			return c.app.List(cmd.Context(), rootArg(args), app.ListOptions{
				Include: include,
				Exclude: exclude,
				TTL:     ttl,
				NoCache: noCache,
			})
		},
	}

	cmd.Flags().StringSlice("include", nil, "Only use the named recognizers (comma separated)")
	cmd.Flags().StringSlice("exclude", nil, "Skip the named recognizers (comma separated)")
	cmd.Flags().Duration("ttl", domain.DefaultCacheTTL, "Reuse a cached scan younger than this")
	cmd.Flags().Bool("no-cache", false, "Always scan, ignoring any cached results")

	return cmd
}

func ttlFlag(cmd *cobra.Command) (time.Duration, error) {
	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, zerr.With(zerr.New("--ttl must not be negative"), "ttl", ttl.String())
	}
	return ttl, nil
}
