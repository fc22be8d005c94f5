package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks or focus sessions to CSV or JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "csv", "Output format (csv, json)")
	exportCmd.Flags().StringP("what", "w", "tasks", "What to export (tasks, sessions)")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default: productive-<what>-<date>.<format> in the current directory)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	what, _ := cmd.Flags().GetString("what")
	output, _ := cmd.Flags().GetString("output")

	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}
	if what != "tasks" && what != "sessions" {
		return fmt.Errorf("unknown export %q (want tasks or sessions)", what)
	}
	if output == "" {
		output = fmt.Sprintf("productive-%s-%s.%s", what, time.Now().Format("2006-01-02"), format)
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	snap := e.state.Snapshot()
	switch what + "/" + format {
	case "tasks/csv":
		err = export.TasksToCSV(snap.Tasks, output)
	case "tasks/json":
		err = export.TasksToJSON(snap.Tasks, output)
	case "sessions/csv":
		err = export.SessionsToCSV(snap.FocusSessions, output)
	case "sessions/json":
		err = export.SessionsToJSON(snap.FocusSessions, output)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", what, err)
	}

	abs, _ := filepath.Abs(output)
	e.logger.Info("exported", "what", what, "format", format, "path", abs)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", what, output)
	return nil
}
