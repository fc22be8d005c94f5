package state

import (
	"math"
	"strings"
)

func (c *Container) find(id string) int {
	for i := range c.snap.Tasks {
		if c.snap.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a new task. A blank title is rejected and reported by the
// false result; nothing is stored in that case. Empty status and priority
// default to todo and medium.
func (c *Container) AddTask(in TaskInput) (Task, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, false
	}
	if in.Status == "" {
		in.Status = StatusTodo
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	t := Task{
		ID:          c.uniqueTaskID(),
		Title:       title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		CreatedAt:   c.now().UnixMilli(),
	}
	if in.DueDate != nil {
		due := *in.DueDate
		t.DueDate = &due
	}
	c.snap.Tasks = append(c.snap.Tasks, t)
	c.commit()
	return t.clone(), true
}

// UpdateTask merges patch into the task with the given id. Unknown ids are
// ignored, and so is a blank title.
func (c *Container) UpdateTask(id string, patch TaskPatch) {
	i := c.find(id)
	if i < 0 {
		return
	}
	t := &c.snap.Tasks[i]
	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			t.Title = title
		}
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	switch {
	case patch.ClearDueDate:
		t.DueDate = nil
	case patch.DueDate != nil:
		due := *patch.DueDate
		t.DueDate = &due
	}
	c.commit()
}

func (c *Container) DeleteTask(id string) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.snap.Tasks = append(c.snap.Tasks[:i], c.snap.Tasks[i+1:]...)
	c.commit()
}

// MoveTask sets the status unconditionally. Moving into done here does not
// count towards the weekly history; only ToggleTaskCompletion does.
func (c *Container) MoveTask(id string, status Status) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.snap.Tasks[i].Status = status
	c.commit()
}

// ToggleTaskCompletion flips a task between done and todo. Any status other
// than done goes to done and bumps today's history bucket; done goes back to
// todo without decrementing.
func (c *Container) ToggleTaskCompletion(id string) {
	i := c.find(id)
	if i < 0 {
		return
	}
	t := &c.snap.Tasks[i]
	if t.Status == StatusDone {
		t.Status = StatusTodo
	} else {
		t.Status = StatusDone
		c.snap.PerformanceHistory.record(c.now())
	}
	c.commit()
}

// Task returns a copy of the task with the given id.
func (c *Container) Task(id string) (Task, bool) {
	i := c.find(id)
	if i < 0 {
		return Task{}, false
	}
	return c.snap.Tasks[i].clone(), true
}

func (c *Container) Tasks() []Task {
	return c.Snapshot().Tasks
}

// ActiveTasks returns the tasks that are not done, optionally restricted to
// one priority. An empty priority matches all.
func (c *Container) ActiveTasks(p Priority) []Task {
	var out []Task
	for _, t := range c.snap.Tasks {
		if t.Status == StatusDone {
			continue
		}
		if p != "" && t.Priority != p {
			continue
		}
		out = append(out, t.clone())
	}
	return out
}

// CompletionRate is the percentage of tasks that are done, rounded to the
// nearest integer. An empty board reports 0.
func (c *Container) CompletionRate() int {
	if len(c.snap.Tasks) == 0 {
		return 0
	}
	done := c.StatusCounts()[StatusDone]
	return int(math.Round(float64(done) / float64(len(c.snap.Tasks)) * 100))
}

func (c *Container) StatusCounts() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, t := range c.snap.Tasks {
		counts[t.Status]++
	}
	return counts
}

func (c *Container) PriorityCounts() map[Priority]int {
	counts := make(map[Priority]int, len(Priorities))
	for _, t := range c.snap.Tasks {
		counts[t.Priority]++
	}
	return counts
}
