package summarizer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

type implGemini struct {
	apiKey   string
	model    string
	baseURL  string
	defaults config.SummarizerConfig
	logger   logger.Logger
}

// NewGemini creates a Summarizer that sends inline audio to a Gemini model.
func NewGemini(cfg config.GeminiConfig, defaults config.SummarizerConfig, log logger.Logger) Summarizer {
	return &implGemini{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		baseURL:  cfg.BaseURL,
		defaults: defaults,
		logger:   log,
	}
}

func (g *implGemini) Name() string { return "gemini" }

func (g *implGemini) Summarize(ctx context.Context, req Request) string {
	if g.apiKey == "" || g.model == "" {
		g.logger.Error(ctx, "Gemini is not configured (api key and model are required)")
		return misconfiguredMessage
	}

	summary, err := g.callGemini(ctx, req)
	if err != nil {
		g.logger.Error(ctx, "Failed to summarize %s: %v", req.Name, err)
		return fmt.Sprintf("Error from Gemini: %v", err)
	}
	return summary
}

// callGemini sends the audio as an inline part and returns the summary text.
func (g *implGemini) callGemini(ctx context.Context, req Request) (string, error) {
	if g.defaults.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.defaults.Timeout)
		defer cancel()
	}

	raw, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	cc := &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if g.baseURL != "" {
		cc.HTTPOptions.BaseURL = g.baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	system, user := prompts(req, g.defaults)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(user),
			genai.NewPartFromBytes(raw, req.Format.MIMEType()),
		}, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
