package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/video-summarizer/internal/apperrors"
)

const envPrefix = "vidsum"

var validate = validator.New()

// envOverrides are read from VIDSUM_* variables, after .env is loaded.
type envOverrides struct {
	LogLevel              string `envconfig:"LOG_LEVEL"`
	Backend               string `envconfig:"BACKEND"`
	Endpoint              string `envconfig:"ENDPOINT"`
	ChunkSize             int    `envconfig:"CHUNK_SIZE"`
	TranscriptSource      string `envconfig:"TRANSCRIPT_SOURCE"`
	TranscriptURLTemplate string `envconfig:"TRANSCRIPT_URL_TEMPLATE"`
	CredentialsPath       string `envconfig:"CREDENTIALS_PATH"`
}

// Load reads the YAML file at path, applies .env and VIDSUM_* overrides,
// fills defaults and validates. A missing file means all defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, apperrors.ErrConfig("parse "+path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, apperrors.ErrConfig("read "+path, err)
	}

	// .env is optional
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, apperrors.ErrConfig("read environment", err)
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.ErrConfig("validate", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv(env envOverrides) {
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.Backend != "" {
		c.Summarizer.Backend = strings.ToLower(env.Backend)
	}
	if env.Endpoint != "" {
		c.Summarizer.Endpoint = env.Endpoint
	}
	if env.ChunkSize != 0 {
		c.Summarizer.ChunkSize = env.ChunkSize
	}
	if env.TranscriptSource != "" {
		c.Transcript.Source = strings.ToLower(env.TranscriptSource)
	}
	if env.TranscriptURLTemplate != "" {
		c.Transcript.URLTemplate = env.TranscriptURLTemplate
	}
	if env.CredentialsPath != "" {
		c.Credentials.Path = env.CredentialsPath
	}
}

type credentialFile struct {
	Token string `json:"token"`
}

// LoadCredential reads the API token from a JSON file of the form {"token": "..."}.
func LoadCredential(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.ErrConfig("open credential file "+path, err)
	}
	defer f.Close()

	var cred credentialFile
	if err := json.NewDecoder(f).Decode(&cred); err != nil {
		return "", apperrors.ErrConfig("parse credential file "+path, err)
	}

	token := strings.TrimSpace(cred.Token)
	if token == "" {
		return "", apperrors.ErrConfig("credential file "+path+" has an empty token", nil)
	}

	return token, nil
}
