package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/state"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored state; the next start loads the sample data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all tasks, sessions and settings")
}

func runReset(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("reset deletes all stored state; pass --yes to confirm")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.DeleteBlob(state.StorageKey); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.logger.Warn("stored state deleted")
	fmt.Fprintln(cmd.OutOrStdout(), "Stored state deleted.")
	return nil
}
