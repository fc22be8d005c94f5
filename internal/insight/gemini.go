package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"github.com/sadopc/productive/internal/config"
)

// Gemini generates text through the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *log.Logger
}

// NewGemini creates a Gemini provider for apiKey.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, logger *log.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model, timeout: timeout, logger: logger}, nil
}

// Generate issues one request bounded by the configured timeout. There is
// no retry.
func (g *Gemini) Generate(ctx context.Context, system, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		g.logger.Warn("gemini request failed", "model", g.model, "err", err)
		return "", fmt.Errorf("generate content: %w", err)
	}
	g.logger.Debug("gemini request", "model", g.model, "took", time.Since(start))
	return resp.Text(), nil
}

// NewProvider returns a Gemini provider when cfg carries an API key and the
// offline provider otherwise.
func NewProvider(ctx context.Context, cfg config.GeminiConfig, logger *log.Logger) Provider {
	if cfg.APIKey == "" {
		logger.Debug("no gemini api key, insight runs offline")
		return Offline{}
	}
	g, err := NewGemini(ctx, cfg.APIKey, cfg.Model, cfg.Timeout, logger)
	if err != nil {
		logger.Warn("gemini unavailable", "err", err)
		return Offline{}
	}
	return g
}
