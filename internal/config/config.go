package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	AI struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"ai"`
	Output struct {
		Render   bool   `yaml:"render"`
		JSONPath string `yaml:"json_path"`
		Markdown string `yaml:"markdown_path"`
	} `yaml:"output"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Output.JSONPath = "analysis.json"
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("REPOINTEL_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("REPOINTEL_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if render := os.Getenv("REPOINTEL_RENDER"); render != "" {
		if v, err := strconv.ParseBool(render); err == nil {
			cfg.Output.Render = v
		}
	}

	return cfg, nil
}
