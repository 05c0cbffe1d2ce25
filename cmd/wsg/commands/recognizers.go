package commands

import "github.com/spf13/cobra"

func (c *CLI) newRecognizersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recognizers",
		Short: "Show the project types wsg recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			include, _ := cmd.Flags().GetStringSlice("include")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			return c.app.Recognizers(cmd.Context(), include, exclude)
		},
	}

	cmd.Flags().StringSlice("include", nil, "Only show the named recognizers (comma separated)")
	cmd.Flags().StringSlice("exclude", nil, "Hide the named recognizers (comma separated)")

	return cmd
}
