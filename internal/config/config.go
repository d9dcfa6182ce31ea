package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string       `yaml:"port"`
	AudioDir       string       `yaml:"audio_dir"`
	StartupTimeout string       `yaml:"startup_timeout"`
	Groq           GroqConfig   `yaml:"groq"`
	Sheets         SheetsConfig `yaml:"sheets"`
	Log            LogConfig    `yaml:"log"`
}

type GroqConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	ChatModel          string `yaml:"chat_model"`
	TranscriptionModel string `yaml:"transcription_model"`
}

type SheetsConfig struct {
	// Credentials is the service-account key JSON itself, not a path.
	Credentials     string `yaml:"credentials"`
	SpreadsheetName string `yaml:"spreadsheet_name"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	Worksheet       string `yaml:"worksheet"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

const (
	DefaultPort            = "10000"
	DefaultSpreadsheetName = "Sales-CRM-Database"
	DefaultWorksheet       = "Leads"
	DefaultGroqBaseURL     = "https://api.groq.com/openai/v1"
	DefaultChatModel       = "llama-3.3-70b-versatile"
	DefaultSTTModel        = "whisper-large-v3"
	DefaultStartupTimeout  = 15 * time.Second
)

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) bool {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	loaded := false
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			loaded = true
		}
	}
	return loaded
}

// Load builds the configuration: optional YAML file at path (env-expanded),
// then environment variables, then defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.setDefaults()

	if _, err := time.ParseDuration(cfg.StartupTimeout); err != nil {
		return nil, fmt.Errorf("invalid startup_timeout %q: %w", cfg.StartupTimeout, err)
	}

	return &cfg, nil
}

// Timeout is the startup budget for building external clients.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.StartupTimeout)
	if err != nil || d <= 0 {
		return DefaultStartupTimeout
	}
	return d
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Port, "PORT")
	set(&c.AudioDir, "AUDIO_TMP_DIR")
	set(&c.StartupTimeout, "STARTUP_TIMEOUT")
	set(&c.Groq.APIKey, "GROQ_API_KEY")
	set(&c.Groq.BaseURL, "GROQ_BASE_URL")
	set(&c.Groq.ChatModel, "GROQ_CHAT_MODEL")
	set(&c.Groq.TranscriptionModel, "GROQ_TRANSCRIPTION_MODEL")
	set(&c.Sheets.Credentials, "GCP_CREDENTIALS")
	set(&c.Sheets.SpreadsheetName, "SPREADSHEET_NAME")
	set(&c.Sheets.SpreadsheetID, "SPREADSHEET_ID")
	set(&c.Sheets.Worksheet, "WORKSHEET_NAME")
	set(&c.Log.Level, "LOG_LEVEL")
}

func (c *Config) setDefaults() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.StartupTimeout == "" {
		c.StartupTimeout = DefaultStartupTimeout.String()
	}
	if c.Groq.BaseURL == "" {
		c.Groq.BaseURL = DefaultGroqBaseURL
	}
	if c.Groq.ChatModel == "" {
		c.Groq.ChatModel = DefaultChatModel
	}
	if c.Groq.TranscriptionModel == "" {
		c.Groq.TranscriptionModel = DefaultSTTModel
	}
	if c.Sheets.SpreadsheetName == "" {
		c.Sheets.SpreadsheetName = DefaultSpreadsheetName
	}
	if c.Sheets.Worksheet == "" {
		c.Sheets.Worksheet = DefaultWorksheet
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
