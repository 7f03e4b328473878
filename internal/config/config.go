package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	MCP      MCPConfig      `mapstructure:"mcp"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Simulate SimulateConfig `mapstructure:"simulate"`
}

type UIConfig struct {
	Mode      string `mapstructure:"mode"` // auto | tui | plain
	AltScreen bool   `mapstructure:"alt_screen"`
}

type LogConfig struct {
	File  string `mapstructure:"file"` // empty disables logging
	Level string `mapstructure:"level"`
}

type MCPConfig struct {
	Addr         string   `mapstructure:"addr"`
	Path         string   `mapstructure:"path"`
	Token        string   `mapstructure:"token"`
	Origins      []string `mapstructure:"origins"`
	Stateless    bool     `mapstructure:"stateless"`
	JSONResponse bool     `mapstructure:"json_response"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type SimulateConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.mode", ModeAuto)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("mcp.addr", "127.0.0.1:8765")
	v.SetDefault("mcp.path", "/mcp")
	v.SetDefault("mcp.origins", []string{"http://localhost", "http://127.0.0.1"})
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("simulate.max_turns", 40)
}

// LoadConfig reads island.yaml (from path, or the working directory and
// ~/.config/island when path is empty) and ISLAND_* environment variables.
// A missing config file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("island")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "island"))
		}
	}

	v.SetEnvPrefix("ISLAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gemini.api_key", "ISLAND_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeAuto, ModeTUI, ModePlain:
	default:
		return fmt.Errorf("ui.mode must be one of auto, tui, plain; got %q", c.UI.Mode)
	}
	if c.Simulate.MaxTurns <= 0 {
		return fmt.Errorf("simulate.max_turns must be positive; got %d", c.Simulate.MaxTurns)
	}
	return nil
}

// RequireGemini reports an error when no Gemini API key is configured.
func (c *Config) RequireGemini() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}
