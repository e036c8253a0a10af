package config

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config mirrors config.json. Missing or broken files fall back to defaults
// so the pet always starts.
type Config struct {
	AssetDir        string  `json:"asset_dir"`        // directory holding the animation GIFs
	LogDir          string  `json:"log_dir"`          // where chat session CSVs are written
	Model           string  `json:"model"`            // Gemini model name
	ShowStats       bool    `json:"show_stats"`       // start with the CPU/MEM overlay on
	StressThreshold float64 `json:"stress_threshold"` // CPU percent above which Neko refuses to sleep
}

// Env carries the settings that only make sense as environment variables.
// The API key is never written to config.json.
type Env struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	Model        string `env:"NEKO_MODEL"`
}

// APIKey prefers GEMINI_API_KEY and falls back to GOOGLE_API_KEY.
func (e Env) APIKey() string {
	if e.GeminiAPIKey != "" {
		return e.GeminiAPIKey
	}
	return e.GoogleAPIKey
}

func NewDefault() *Config {
	return &Config{
		AssetDir:        "image",
		LogDir:          "logs",
		Model:           "gemini-2.5-flash",
		ShowStats:       false,
		StressThreshold: 80,
	}
}

// Load reads the config file. A missing file is not an error, and a corrupt
// one is quietly replaced by defaults.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	cfg := NewDefault()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return NewDefault(), nil
	}
	return cfg, nil
}

// Save writes the config back out, indented for hand editing.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
