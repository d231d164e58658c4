package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
)

const (
	DefaultSystemPrompt = "You are an AI assistant with a charter to clearly analyze the customer enquiry."
	DefaultUserPrompt   = "Summarize the audio content."
)

type Config struct {
	Format      FormatConfig      `yaml:"format"`
	Download    DownloadConfig    `yaml:"download"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Azure       AzureConfig       `yaml:"azure"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// FormatConfig selects the single container format this deployment accepts.
// Validate parses Policy into Accepted.
type FormatConfig struct {
	Policy   string       `yaml:"policy"`
	Accepted audio.Format `yaml:"-"`
}

type DownloadConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	TempDir    string        `yaml:"temp_dir"`
	TempPrefix string        `yaml:"temp_prefix"`
}

type PersistenceConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type SummarizerConfig struct {
	Provider     string        `yaml:"provider"`
	SystemPrompt string        `yaml:"system_prompt"`
	UserPrompt   string        `yaml:"user_prompt"`
	Timeout      time.Duration `yaml:"timeout"`
}

type AzureConfig struct {
	Endpoint   string `yaml:"endpoint"`
	APIKey     string `yaml:"api_key"`
	Deployment string `yaml:"deployment"`
	APIVersion string `yaml:"api_version"`
}

type GeminiConfig struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
}

type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, overlays the environment and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated config built from defaults and the environment only.
func Default() (*Config, error) {
	var cfg Config
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads a .env file into the process environment if one exists.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides file values with the deployment's environment variables.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Azure.Endpoint, "AC_OPENAI_ENDPOINT")
	setFromEnv(&c.Azure.APIKey, "AC_OPENAI_API_KEY")
	setFromEnv(&c.Azure.Deployment, "AC_MODEL_DEPLOYMENT")
	setFromEnv(&c.Azure.APIVersion, "AC_OPENAI_API_VERSION")
	setFromEnv(&c.Gemini.APIKey, "GEMINI_API_KEY")
	setFromEnv(&c.Persistence.Dir, "AUDIO_SAVE_DIR")
	setFromEnv(&c.Format.Policy, "AUDIO_FORMAT_POLICY")
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	if c.Format.Policy == "" {
		c.Format.Policy = "mp3"
	}
	accepted, err := audio.ParseFormat(c.Format.Policy)
	if err != nil {
		return fmt.Errorf("format.policy: %w", err)
	}
	c.Format.Accepted = accepted

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "azure"
	}
	switch c.Summarizer.Provider {
	case "azure", "gemini", "demo":
	default:
		return fmt.Errorf("summarizer.provider %q is not one of azure, gemini, demo", c.Summarizer.Provider)
	}

	if c.Download.Timeout < 0 {
		return fmt.Errorf("download.timeout must not be negative")
	}
	if c.Download.Timeout == 0 {
		c.Download.Timeout = 30 * time.Second
	}
	if c.Download.TempPrefix == "" {
		c.Download.TempPrefix = "dlaudio_"
	}
	if c.Summarizer.Timeout == 0 {
		c.Summarizer.Timeout = 2 * time.Minute
	}
	if c.Summarizer.SystemPrompt == "" {
		c.Summarizer.SystemPrompt = DefaultSystemPrompt
	}
	if c.Summarizer.UserPrompt == "" {
		c.Summarizer.UserPrompt = DefaultUserPrompt
	}
	if c.Persistence.Dir == "" {
		c.Persistence.Dir = "./saved_audio"
	}
	if c.Azure.APIVersion == "" {
		c.Azure.APIVersion = "2024-10-21"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":7860"
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = 100
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/summaries"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// SaveDir returns the persistence directory to use for a request, or ""
// when persistence is off.
func (c *Config) SaveDir(enabled bool, override string) string {
	if !enabled {
		return ""
	}
	if dir := strings.TrimSpace(override); dir != "" {
		return dir
	}
	return c.Persistence.Dir
}
