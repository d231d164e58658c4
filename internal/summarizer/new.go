package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// New creates the Summarizer selected by cfg.Summarizer.Provider.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case "azure":
		return NewAzure(cfg.Azure, cfg.Summarizer, log), nil
	case "gemini":
		return NewGemini(cfg.Gemini, cfg.Summarizer, log), nil
	case "demo":
		return NewDemo(), nil
	}
	return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
}

// prompts applies the configured defaults to blank request prompts.
func prompts(req Request, defaults config.SummarizerConfig) (system, user string) {
	system = strings.TrimSpace(req.SystemPrompt)
	if system == "" {
		system = defaults.SystemPrompt
	}
	user = strings.TrimSpace(req.UserPrompt)
	if user == "" {
		user = defaults.UserPrompt
	}
	return system, user
}
