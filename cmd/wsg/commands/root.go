// Package commands implements the CLI commands for wsg.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wsg/internal/app"
	"go.trai.ch/wsg/internal/build"
	"go.trai.ch/wsg/internal/core/domain"
)

// CLI represents the command line interface for wsg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	List(ctx context.Context, root string, opts app.ListOptions) error
	Clean(ctx context.Context, root string, ids []domain.Index, opts app.CleanOptions) error
	Recognizers(ctx context.Context, include, exclude []string) error
	ClearCache(ctx context.Context) error
	InvalidateCache(ctx context.Context, root string) error
	ConfigureLogging(debug, json bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "wsg [path]",
		Short:         "Find and delete build artifacts to reclaim disk space",
		Long:          "wsg scans a directory tree for known project types and lists the build\nartifacts that can be deleted safely. Running wsg without a command lists\nartifacts below path, or the current directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			jsonLogs, _ := cmd.Flags().GetBool("log-json")
			c.app.ConfigureLogging(debug, jsonLogs)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.List(cmd.Context(), rootArg(args), app.ListOptions{TTL: domain.DefaultCacheTTL})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newRecognizersCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// rootArg returns the scan root given on the command line, or the current directory.
func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
