// Package cli wires the admind commands: the HTTP server, the format
// catalog, and an offline demo of the campaign engine.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/config"
)

// App holds everything CLI commands need.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	// IsInteractive reports whether stdout is a terminal; styled output
	// is only used interactively.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "admind" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "admind",
		Short: "Ad creative strategy engine and campaign map server",
	}

	root.AddCommand(
		newServeCmd(app),
		newFormatsCmd(app),
		newDemoCmd(app),
	)

	return root
}
