package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

const misconfiguredMessage = "Server misconfiguration: required env vars missing."

type implAzure struct {
	cfg      config.AzureConfig
	defaults config.SummarizerConfig
	logger   logger.Logger
	client   openai.ClientConfig
}

// NewAzure creates a Summarizer backed by an Azure OpenAI chat deployment
// that accepts input_audio content parts.
func NewAzure(cfg config.AzureConfig, defaults config.SummarizerConfig, log logger.Logger) Summarizer {
	client := openai.DefaultAzureConfig(cfg.APIKey, strings.TrimRight(cfg.Endpoint, "/"))
	if cfg.APIVersion != "" {
		client.APIVersion = cfg.APIVersion
	}
	// Deployment names are used verbatim.
	client.AzureModelMapperFunc = func(model string) string { return model }
	client.HTTPClient = &http.Client{}

	return &implAzure{
		cfg:      cfg,
		defaults: defaults,
		logger:   log,
		client:   client,
	}
}

func (a *implAzure) Name() string { return "azure" }

// Wire types for the parts go-openai does not model (input_audio).
type azureMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type azurePart struct {
	Type       string      `json:"type"`
	Text       string      `json:"text,omitempty"`
	InputAudio *azureAudio `json:"input_audio,omitempty"`
}

type azureAudio struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

type azureRequest struct {
	Messages []azureMessage `json:"messages"`
}

func (a *implAzure) Summarize(ctx context.Context, req Request) string {
	if a.cfg.Endpoint == "" || a.cfg.APIKey == "" || a.cfg.Deployment == "" {
		a.logger.Error(ctx, "Azure OpenAI is not configured (endpoint, api key and deployment are required)")
		return misconfiguredMessage
	}

	summary, err := a.complete(ctx, req)
	if err != nil {
		a.logger.Error(ctx, "Azure OpenAI call failed for %s: %v", req.Name, err)
		return fmt.Sprintf("Error from Azure OpenAI: %v", err)
	}
	return summary
}

func (a *implAzure) complete(ctx context.Context, req Request) (string, error) {
	if a.defaults.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.defaults.Timeout)
		defer cancel()
	}

	system, user := prompts(req, a.defaults)
	body, err := json.Marshal(azureRequest{
		Messages: []azureMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: []azurePart{
				{Type: string(openai.ChatMessagePartTypeText), Text: user},
				{Type: "input_audio", InputAudio: &azureAudio{Data: req.Audio, Format: req.Format.String()}},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", a.cfg.APIKey)

	a.logger.Debug(ctx, "Sending %s audio to Azure deployment %s", req.Format, a.cfg.Deployment)

	resp, err := a.client.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openai.ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != nil {
			errResp.Error.HTTPStatusCode = resp.StatusCode
			errResp.Error.HTTPStatus = resp.Status
			return "", errResp.Error
		}
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out openai.ChatCompletionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response from Azure OpenAI")
	}
	return out.Choices[0].Message.Content, nil
}

func (a *implAzure) endpoint() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		a.client.BaseURL,
		url.PathEscape(a.client.AzureModelMapperFunc(a.cfg.Deployment)),
		url.QueryEscape(a.client.APIVersion),
	)
}
