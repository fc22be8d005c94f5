package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sadopc/productive/internal/state"
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task", "t"},
	Short:   "Manage tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDone,
}

var tasksMoveCmd = &cobra.Command{
	Use:   "move [task-id] [status]",
	Short: "Move a task to todo, in-progress or done",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksMove,
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRm,
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksMoveCmd)
	tasksCmd.AddCommand(tasksRmCmd)

	tasksListCmd.Flags().String("status", "", "Only show tasks with this status")
	tasksListCmd.Flags().String("priority", "", "Only show tasks with this priority")

	tasksAddCmd.Flags().StringP("priority", "p", string(state.PriorityMedium), "Priority (low, medium, high)")
	tasksAddCmd.Flags().StringP("status", "s", string(state.StatusTodo), "Status (todo, in-progress, done)")
	tasksAddCmd.Flags().StringP("description", "d", "", "Description")
	tasksAddCmd.Flags().Int("due", 0, "Due in this many days (0 for none)")
}

func runTasksList(cmd *cobra.Command, args []string) error {
	statusFlag, _ := cmd.Flags().GetString("status")
	priorityFlag, _ := cmd.Flags().GetString("priority")

	var (
		status   state.Status
		priority state.Priority
		err      error
	)
	if statusFlag != "" {
		if status, err = state.ParseStatus(statusFlag); err != nil {
			return err
		}
	}
	if priorityFlag != "" {
		if priority, err = state.ParsePriority(priorityFlag); err != nil {
			return err
		}
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	var rows [][]string
	for _, t := range e.state.Tasks() {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		due := ""
		if d, ok := t.Due(); ok {
			due = d.Local().Format("2006-01-02")
		}
		rows = append(rows, []string{shortID(t.ID), string(t.Status), string(t.Priority), t.Title, due})
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STATUS", "PRIORITY", "TITLE", "DUE").
		Rows(rows...)
	fmt.Fprintln(out, tbl.String())
	fmt.Fprintf(out, "%d tasks, %d%% complete\n", len(rows), e.state.CompletionRate())
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	priorityFlag, _ := cmd.Flags().GetString("priority")
	statusFlag, _ := cmd.Flags().GetString("status")
	desc, _ := cmd.Flags().GetString("description")
	dueDays, _ := cmd.Flags().GetInt("due")

	priority, err := state.ParsePriority(priorityFlag)
	if err != nil {
		return err
	}
	status, err := state.ParseStatus(statusFlag)
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	in := state.TaskInput{
		Title:       strings.Join(args, " "),
		Description: desc,
		Status:      status,
		Priority:    priority,
	}
	if dueDays > 0 {
		due := time.Now().AddDate(0, 0, dueDays).UnixMilli()
		in.DueDate = &due
	}

	t, ok := e.state.AddTask(in)
	if !ok {
		return fmt.Errorf("task title is required")
	}
	e.logger.Info("task added", "id", t.ID, "title", t.Title)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", shortID(t.ID), t.Title)
	return nil
}

func runTasksDone(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := resolveTask(e.state, args[0])
	if err != nil {
		return err
	}
	e.state.ToggleTaskCompletion(t.ID)
	t, _ = e.state.Task(t.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "%q is now %s\n", t.Title, t.Status)
	return nil
}

func runTasksMove(cmd *cobra.Command, args []string) error {
	status, err := state.ParseStatus(args[1])
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := resolveTask(e.state, args[0])
	if err != nil {
		return err
	}
	e.state.MoveTask(t.ID, status)
	fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to %s\n", t.Title, status)
	return nil
}

func runTasksRm(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := resolveTask(e.state, args[0])
	if err != nil {
		return err
	}
	e.state.DeleteTask(t.ID)
	e.logger.Info("task deleted", "id", t.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", t.Title)
	return nil
}

// resolveTask finds a task by full id or unique id prefix.
func resolveTask(c *state.Container, ref string) (state.Task, error) {
	if t, ok := c.Task(ref); ok {
		return t, nil
	}
	var matches []state.Task
	for _, t := range c.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return state.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return state.Task{}, fmt.Errorf("%q is ambiguous (%d tasks)", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
