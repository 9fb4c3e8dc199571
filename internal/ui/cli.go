// Package ui provides the command-line interface for roomgrid.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"roomgrid/internal/api"
	"roomgrid/internal/auth"
	"roomgrid/internal/config"
	"roomgrid/internal/dateutil"
	"roomgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool   // Enable debug logging
	noColor bool   // Disable colored output
	roomID  int64  // Room opened by the timetable
	week    string // Week to open, YYYY-MM-DD
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "roomgrid",
		Short: "A terminal client for room reservations",
		Long: `Roomgrid shows a room's weekly timetable in the terminal.

Drag across free half-hour slots with the mouse to reserve them,
click a booking to see who holds it, and move between weeks with
the arrow keys.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var opts []tui.ModelOption
			if a.week != "" {
				day, err := dateutil.ParseDate(a.week)
				if err != nil {
					return fmt.Errorf("--week: %w", err)
				}
				opts = append(opts, tui.WithWeek(day))
			}
			return tui.RunWithDebug(a.service(), a.tokens(), a.config, a.room(), a.debug, opts...)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to roomgrid-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.Flags().Int64VarP(&a.roomID, "room", "m", 0, "Room to open (default from config)")
	a.root.Flags().StringVarP(&a.week, "week", "w", "", "Open the week containing this date (YYYY-MM-DD)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.roomsCmd())

	return a
}

// service builds the backend client from config.
func (a *App) service() api.Service {
	return api.NewClient(a.config.Server.BaseURL, a.timeout())
}

// tokens builds the identity token source from config.
func (a *App) tokens() *auth.Source {
	return auth.NewSource(a.config.Identity.BaseURL, a.config.Identity.PermissionIdx, a.timeout())
}

func (a *App) timeout() time.Duration {
	return time.Duration(a.config.Server.TimeoutSeconds) * time.Second
}

func (a *App) room() int64 {
	if a.roomID != 0 {
		return a.roomID
	}
	return a.config.Server.DefaultRoomID
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("roomgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
