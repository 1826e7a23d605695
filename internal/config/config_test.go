package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-summarizer/internal/apperrors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "process source with command",
			config: Config{
				Transcript: TranscriptConfig{
					Source:  SourceProcess,
					Command: []string{"python3", "get_transcript.py"},
				},
			},
			wantErr: false,
		},
		{
			name: "process source with dir and env",
			config: Config{
				Transcript: TranscriptConfig{
					Source:  SourceProcess,
					Command: []string{"fetch-transcript"},
					Dir:     "scripts",
					Env:     []string{"TRANSCRIPT_LANG=en"},
				},
			},
			wantErr: false,
		},
		{
			name: "process env entry without equals sign",
			config: Config{
				Transcript: TranscriptConfig{
					Source:  SourceProcess,
					Command: []string{"fetch-transcript"},
					Env:     []string{"TRANSCRIPT_LANG"},
				},
			},
			wantErr: true,
		},
		{
			name: "process source without command",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceProcess},
			},
			wantErr: true,
		},
		{
			name: "url template without placeholder",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceHTTP, URLTemplate: "https://example.com/url"},
			},
			wantErr: true,
		},
		{
			name: "url template with percent-encoded query",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceHTTP, URLTemplate: "https://example.com/captions?q=en%2Dus&v=%s"},
			},
			wantErr: false,
		},
		{
			name: "url template with two placeholders",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceHTTP, URLTemplate: "https://example.com/%s?v=%s"},
			},
			wantErr: true,
		},
		{
			name: "relative url template",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceHTTP, URLTemplate: "captions/%s"},
			},
			wantErr: true,
		},
		{
			name: "url template with broken escape",
			config: Config{
				Transcript: TranscriptConfig{Source: SourceHTTP, URLTemplate: "https://example.com/captions%zz/%s"},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Summarizer: SummarizerConfig{Backend: "claude"},
			},
			wantErr: true,
		},
		{
			name: "min length above max length",
			config: Config{
				Summarizer: SummarizerConfig{MaxLength: 20, MinLength: 40},
			},
			wantErr: true,
		},
		{
			name: "bad transcript format",
			config: Config{
				Transcript: TranscriptConfig{Format: "srt"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summarizer.ChunkSize != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", cfg.Summarizer.ChunkSize)
	}
	if cfg.Summarizer.MaxLength != 150 || cfg.Summarizer.MinLength != 30 {
		t.Errorf("lengths = %d/%d, want 150/30", cfg.Summarizer.MaxLength, cfg.Summarizer.MinLength)
	}
	if cfg.Summarizer.Separator != "\n\n" {
		t.Errorf("Separator = %q, want blank line", cfg.Summarizer.Separator)
	}
	if cfg.Transcript.Format != FormatXML {
		t.Errorf("Format = %q, want %q for default timedtext source", cfg.Transcript.Format, FormatXML)
	}
	if cfg.Credentials.Path != "config.json" {
		t.Errorf("Credentials.Path = %q, want config.json", cfg.Credentials.Path)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
credentials:
  path: "secrets/token.json"

summarizer:
  backend: "huggingface"
  endpoint: "http://localhost:9999/models/bart"
  chunk_size: 512

transcript:
  source: "http"
  format: "json"
  url_template: "http://localhost:9998/transcripts/%s"
  timeout: 30s

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summarizer.Endpoint != "http://localhost:9999/models/bart" {
		t.Errorf("Endpoint = %v", cfg.Summarizer.Endpoint)
	}
	if cfg.Summarizer.ChunkSize != 512 {
		t.Errorf("ChunkSize = %v, want 512", cfg.Summarizer.ChunkSize)
	}
	if cfg.Transcript.Timeout.Seconds() != 30 {
		t.Errorf("Transcript.Timeout = %v, want 30s", cfg.Transcript.Timeout)
	}
	if cfg.Credentials.Path != "secrets/token.json" {
		t.Errorf("Credentials.Path = %v", cfg.Credentials.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VIDSUM_CHUNK_SIZE", "256")
	t.Setenv("VIDSUM_BACKEND", "OpenAI")
	t.Setenv("VIDSUM_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Summarizer.ChunkSize != 256 {
		t.Errorf("ChunkSize = %d, want 256", cfg.Summarizer.ChunkSize)
	}
	if cfg.Summarizer.Backend != BackendOpenAI {
		t.Errorf("Backend = %q, want %q", cfg.Summarizer.Backend, BackendOpenAI)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("summarizer: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should return error for malformed yaml")
	}
	if !apperrors.Is(err, apperrors.KindConfig) {
		t.Errorf("Load() error kind = %v, want ConfigError", apperrors.KindOf(err))
	}
}

func TestLoadCredential(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"valid", write("ok.json", `{"token": "hf_abc"}`), "hf_abc", false},
		{"missing file", filepath.Join(dir, "nope.json"), "", true},
		{"invalid json", write("bad.json", `{"token": `), "", true},
		{"empty token", write("empty.json", `{"token": "  "}`), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadCredential(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCredential() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.Is(err, apperrors.KindConfig) {
				t.Errorf("error kind = %v, want ConfigError", apperrors.KindOf(err))
			}
			if got != tt.want {
				t.Errorf("LoadCredential() = %q, want %q", got, tt.want)
			}
		})
	}
}
