package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/insight"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Ask the coach for a short insight on the active tasks",
	RunE:  runInsight,
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send one message to the productivity coach",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func runInsight(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := commandContext(cmd)
	text := insight.Insight(ctx, e.provider(ctx), e.state.Tasks())
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := commandContext(cmd)
	reply := insight.Chat(ctx, e.provider(ctx), strings.Join(args, " "), e.state.Tasks())
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
