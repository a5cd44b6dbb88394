// Package commands implements the CLI commands for mvnrepo.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mvnrepo/internal/app"
	"go.trai.ch/mvnrepo/internal/build"
	"go.trai.ch/mvnrepo/internal/core/domain"
)

// CLI represents the command line interface for mvnrepo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    globalOptions
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, inv app.Invocation) ([]domain.ResolvedRepoConfig, error)
	WriteSettings(ctx context.Context, inv app.Invocation, w io.Writer) error
	ConfigureLogging(opts app.LoggingOptions)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mvnrepo",
		Short:         "Configure Maven repositories from property files and system properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	bindGlobalFlags(rootCmd.PersistentFlags(), &c.opts)
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(app.LoggingOptions{
			JSON:  c.opts.jsonLogs,
			Quiet: c.opts.quiet,
		})
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newKeysCmd())
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
