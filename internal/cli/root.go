// Package cli wires productive's cobra commands. The root command runs the
// terminal UI; the subcommands operate on the same state for scripting.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/tui"
)

var (
	verbose    bool
	dbPath     string
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "productive",
		Short: "productive - tasks, focus sessions and a productivity coach in your terminal",
		Long: `productive keeps a task board, a focus stopwatch and countdown, daily alarms
and a weekday completion history in a local SQLite database.

Run without a subcommand to open the terminal UI.`,
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: <config dir>/productive/productive.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/productive/config.yaml)")

	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.NewApp(tui.Options{
		State:    e.state,
		Provider: e.provider(commandContext(cmd)),
		Focus:    e.cfg.Focus,
		Logger:   e.logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
