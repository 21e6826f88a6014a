// Package commands implements the CLI commands for the weather CLI.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sanbobsan/weather-cli/internal/app"
	"github.com/sanbobsan/weather-cli/internal/build"
	"github.com/sanbobsan/weather-cli/internal/core/domain"
)

// CLI represents the command line interface for wthr.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Forecast(ctx context.Context, location string, opts app.ForecastOptions) (*domain.Weather, error)
	DefaultLocation() (string, error)
	SetDefaultLocation(location string) error
	Clear(opts app.ClearOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wthr",
		Short:         "Прогноз погоды в терминале",
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
	rootCmd.InitDefaultHelpFlag()

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Bare `wthr [location]` behaves like `wthr weather [location]`.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		location := ""
		if len(args) > 0 {
			location = args[0]
		}
		return c.runWeather(cmd, location, weatherFlags{})
	}

	rootCmd.AddCommand(c.newWeatherCmd())
	rootCmd.AddCommand(c.newSetCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newClearCmd())
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

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
