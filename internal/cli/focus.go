package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/state"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus sessions and the weekday history",
}

var focusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus totals and completions per weekday",
	RunE:  runFocusStats,
}

var focusLogCmd = &cobra.Command{
	Use:   "log [minutes]",
	Short: "Record a focus session done away from the stopwatch",
	Args:  cobra.ExactArgs(1),
	RunE:  runFocusLog,
}

func init() {
	focusCmd.AddCommand(focusStatsCmd)
	focusCmd.AddCommand(focusLogCmd)
}

func runFocusStats(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	c := e.state

	fmt.Fprintf(out, "Sessions:   %d\n", len(c.FocusSessions()))
	fmt.Fprintf(out, "Total:      %s\n", c.TotalFocus().Round(time.Second))
	fmt.Fprintf(out, "Average:    %s\n", c.AverageFocus().Round(time.Second))
	fmt.Fprintf(out, "Completion: %d%%\n", c.CompletionRate())
	if saved, err := e.store.UpdatedAt(state.StorageKey); err == nil {
		fmt.Fprintf(out, "Last saved: %s\n", saved.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintln(out, "Last saved: never")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Completions by weekday:")
	for _, d := range c.History().Datums() {
		fmt.Fprintf(out, "  %s  %3d\n", d.Date, d.CompletedCount)
	}
	return nil
}

func runFocusLog(cmd *cobra.Command, args []string) error {
	var minutes float64
	if _, err := fmt.Sscanf(args[0], "%g", &minutes); err != nil || minutes <= 0 {
		return fmt.Errorf("minutes must be a positive number, got %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ms := int64(minutes * float64(time.Minute/time.Millisecond))
	if !e.state.AddFocusSession(ms) {
		return fmt.Errorf("sessions must be longer than %s", time.Duration(state.MinSessionMs)*time.Millisecond)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", time.Duration(ms)*time.Millisecond)
	return nil
}
