package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	BackendHuggingFace = "huggingface"
	BackendGemini      = "gemini"
	BackendOpenAI      = "openai"

	SourceHTTP    = "http"
	SourceProcess = "process"

	FormatJSON = "json"
	FormatXML  = "xml"
	FormatText = "text"

	defaultTimedTextURL = "https://www.youtube.com/api/timedtext?lang=en&v=%s"
)

type Config struct {
	Credentials CredentialsConfig `yaml:"credentials"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Watcher     WatcherConfig     `yaml:"watcher"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type CredentialsConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type SummarizerConfig struct {
	Backend   string        `yaml:"backend" validate:"oneof=huggingface gemini openai"`
	Endpoint  string        `yaml:"endpoint" validate:"omitempty,url"`
	ChunkSize int           `yaml:"chunk_size" validate:"min=1"`
	MaxLength int           `yaml:"max_length" validate:"min=1"`
	MinLength int           `yaml:"min_length" validate:"min=0,ltefield=MaxLength"`
	Separator string        `yaml:"separator"`
	Timeout   time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type OpenAIConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

type TranscriptConfig struct {
	Source      string        `yaml:"source" validate:"oneof=http process"`
	Format      string        `yaml:"format" validate:"oneof=json xml text"`
	URLTemplate string        `yaml:"url_template"`
	Command     []string      `yaml:"command"`

	// Dir and Env apply to the process source only. Env entries are KEY=VALUE.
	Dir     string        `yaml:"dir"`
	Env     []string      `yaml:"env" validate:"dive,contains=="`
	Timeout time.Duration `yaml:"timeout"`
}

type WatcherConfig struct {
	Inbox string `yaml:"inbox"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	c.applyDefaults()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Summarizer.Timeout < 0 || c.Transcript.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	switch c.Transcript.Source {
	case SourceHTTP:
		if c.Transcript.URLTemplate == "" {
			return fmt.Errorf("transcript.url_template is required for source %q", SourceHTTP)
		}
		if n := strings.Count(c.Transcript.URLTemplate, "%s"); n != 1 {
			return fmt.Errorf("transcript.url_template must contain exactly one %%s, found %d", n)
		}
		sample := strings.Replace(c.Transcript.URLTemplate, "%s", "dQw4w9WgXcQ", 1)
		if u, err := url.Parse(sample); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("transcript.url_template %q is not an absolute URL", c.Transcript.URLTemplate)
		}
	case SourceProcess:
		if len(c.Transcript.Command) == 0 || strings.TrimSpace(c.Transcript.Command[0]) == "" {
			return fmt.Errorf("transcript.command is required for source %q", SourceProcess)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Credentials.Path == "" {
		c.Credentials.Path = "config.json"
	}
	if c.Summarizer.Backend == "" {
		c.Summarizer.Backend = BackendHuggingFace
	}
	if c.Summarizer.Endpoint == "" && c.Summarizer.Backend == BackendHuggingFace {
		c.Summarizer.Endpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"
	}
	if c.Summarizer.ChunkSize == 0 {
		c.Summarizer.ChunkSize = 1024
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = 150
	}
	if c.Summarizer.MinLength == 0 {
		c.Summarizer.MinLength = 30
	}
	if c.Summarizer.Separator == "" {
		c.Summarizer.Separator = "\n\n"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Transcript.Source == "" {
		c.Transcript.Source = SourceHTTP
	}
	if c.Transcript.Source == SourceHTTP && c.Transcript.URLTemplate == "" {
		c.Transcript.URLTemplate = defaultTimedTextURL
		if c.Transcript.Format == "" {
			c.Transcript.Format = FormatXML
		}
	}
	if c.Transcript.Format == "" {
		c.Transcript.Format = FormatJSON
	}
	if c.Watcher.Inbox == "" {
		c.Watcher.Inbox = "data/inbox"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}
