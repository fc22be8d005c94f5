package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/productive/internal/state"
)

type jsonExport[T any] struct {
	ExportedAt string `json:"exported_at"`
	Count      int    `json:"count"`
	Items      []T    `json:"items"`
}

type jsonTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
	DueDate     string `json:"due_date,omitempty"`
}

type jsonSession struct {
	ID         string `json:"id"`
	Completed  string `json:"completed_at"`
	DurationMs int64  `json:"duration_ms"`
	Duration   string `json:"duration"`
}

// TasksToJSON writes the task board to path as indented JSON.
func TasksToJSON(tasks []state.Task, path string) error {
	items := make([]jsonTask, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, jsonTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			CreatedAt:   formatMillis(t.CreatedAt),
			DueDate:     formatDue(t),
		})
	}
	return writeJSON(path, items)
}

// SessionsToJSON writes the focus log to path as indented JSON.
func SessionsToJSON(sessions []state.FocusSession, path string) error {
	items := make([]jsonSession, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, jsonSession{
			ID:         s.ID,
			Completed:  formatMillis(s.Timestamp),
			DurationMs: s.DurationMs,
			Duration:   formatDuration(s.DurationMs / 1000),
		})
	}
	return writeJSON(path, items)
}

func writeJSON[T any](path string, items []T) error {
	export := jsonExport[T]{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(items),
		Items:      items,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
