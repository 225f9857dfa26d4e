package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Info    InfoConfig    `yaml:"info"`
	Convert ConvertConfig `yaml:"convert"`
	LLM     LLMConfig     `yaml:"llm"`
}

// InfoConfig holds the metadata written into the generated specification
type InfoConfig struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

// ConvertConfig holds conversion options
type ConvertConfig struct {
	HARFile    string `yaml:"har_file"`
	Output     string `yaml:"output"`
	PathPrefix string `yaml:"path_prefix"`
	Append     bool   `yaml:"append"`
	Validate   bool   `yaml:"validate"`
}

// LLMConfig holds configuration for optional description enrichment
type LLMConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// LoadConfig loads the configuration from config/config.yaml when present
// and fills in defaults. The file is optional; command-line flags override
// whatever is loaded here.
func LoadConfig() (*Config, error) {
	configPath := "config/config.yaml"

	var config Config
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Override API key from environment variable if set
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.LLM.APIKey = key
	}

	// Set default values if not specified
	if config.Info.Title == "" {
		config.Info.Title = "API Specification"
	}
	if config.Info.Version == "" {
		config.Info.Version = "1.0.0"
	}
	if config.Convert.HARFile == "" {
		config.Convert.HARFile = "network_requests.har"
	}
	if config.Convert.Output == "" {
		config.Convert.Output = "openapi_spec.yaml"
	}
	if config.LLM.Provider == "" {
		config.LLM.Provider = "openai"
	}
	if config.LLM.Model == "" {
		config.LLM.Model = "gpt-4"
	}
	if config.LLM.Temperature == 0 {
		config.LLM.Temperature = 0.7
	}
	if config.LLM.MaxTokens == 0 {
		config.LLM.MaxTokens = 500
	}

	return &config, nil
}
