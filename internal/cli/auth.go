package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Sign in so the UI opens past the login screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out; the name and email are remembered",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().String("email", "", "Email address (keeps the previous one when empty)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if !e.state.Login(args[0], email) {
		return fmt.Errorf("name is required")
	}
	auth := e.state.Auth()
	e.logger.Info("signed in", "user", auth.UserName)
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", auth.UserName)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	e.state.Logout()
	e.logger.Info("signed out")
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}
