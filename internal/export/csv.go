package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/productive/internal/state"
)

// TasksToCSV writes the task board to path.
func TasksToCSV(tasks []state.Task, path string) error {
	return writeCSVFile(path, func(w io.Writer) error { return writeTasksCSV(w, tasks) })
}

// SessionsToCSV writes the focus log to path.
func SessionsToCSV(sessions []state.FocusSession, path string) error {
	return writeCSVFile(path, func(w io.Writer) error { return writeSessionsCSV(w, sessions) })
}

func writeCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTasksCSV(out io.Writer, tasks []state.Task) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Status", "Priority", "Created", "Due", "Description"}); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{
			t.ID,
			t.Title,
			string(t.Status),
			string(t.Priority),
			formatMillis(t.CreatedAt),
			formatDue(t),
			t.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeSessionsCSV(out io.Writer, sessions []state.FocusSession) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Completed", "Duration (ms)", "Duration"}); err != nil {
		return err
	}
	for _, s := range sessions {
		row := []string{
			s.ID,
			formatMillis(s.Timestamp),
			fmt.Sprintf("%d", s.DurationMs),
			formatDuration(s.DurationMs / 1000),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format(time.RFC3339)
}

func formatDue(t state.Task) string {
	if t.DueDate == nil {
		return ""
	}
	return formatMillis(*t.DueDate)
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
