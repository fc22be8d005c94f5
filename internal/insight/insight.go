// Package insight turns the task board into prompts for a generative
// language model and converts every failure into a fixed fallback reply.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sadopc/productive/internal/state"
)

// ErrNoAPIKey is returned by the offline provider.
var ErrNoAPIKey = errors.New("insight: no API key configured")

// Fixed replies shown in place of model output.
const (
	InsightFallback = "Systems offline. Connection to Neural Link failed."
	EmptyFallback   = "Focus on your high-priority targets to maximize output synchronization today."
	ChatFallback    = "Connection latency detected. Please retry your query."
	Greeting        = "Systems online. I'm your Neural Productivity Coach. How can I help you optimize your high-performance cycles today?"

	CoachInstruction = "You are a high-performance productivity coach. Be concise, encouraging, and data-driven."
)

// Provider generates free text for a prompt under an optional system
// instruction.
type Provider interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// ContextLines renders each task as "<title> (<status>, <priority>)".
func ContextLines(tasks []state.Task) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%s (%s, %s)", t.Title, t.Status, t.Priority)
	}
	return lines
}

// Summary joins ContextLines with ", ".
func Summary(tasks []state.Task) string {
	return strings.Join(ContextLines(tasks), ", ")
}

func insightPrompt(tasks []state.Task) string {
	return fmt.Sprintf("Based on these tasks: %s, give me a 2-sentence productivity tip and suggest which task to focus on first.", Summary(tasks))
}

func chatPrompt(message string, tasks []state.Task) string {
	var b strings.Builder
	b.WriteString("Current tasks:\n")
	for _, line := range ContextLines(tasks) {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(message)
	return b.String()
}

// Insight asks p for a short tip about tasks. It never fails: errors become
// InsightFallback and an empty answer becomes EmptyFallback.
func Insight(ctx context.Context, p Provider, tasks []state.Task) string {
	text, err := p.Generate(ctx, "", insightPrompt(tasks))
	if err != nil {
		return InsightFallback
	}
	if strings.TrimSpace(text) == "" {
		return EmptyFallback
	}
	return text
}

// Chat sends one user turn with the task board as context. Each call is
// independent; no conversation memory is kept. Errors and empty answers
// become ChatFallback.
func Chat(ctx context.Context, p Provider, message string, tasks []state.Task) string {
	text, err := p.Generate(ctx, CoachInstruction, chatPrompt(message, tasks))
	if err != nil || strings.TrimSpace(text) == "" {
		return ChatFallback
	}
	return text
}

// Offline is the provider used when no API key is configured.
type Offline struct{}

func (Offline) Generate(context.Context, string, string) (string, error) {
	return "", ErrNoAPIKey
}
