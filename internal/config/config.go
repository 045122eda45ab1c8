package config

import (
	"fmt"
	"os"

	"github.com/sasank-sasi/Vertx/internal/llm"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	// Multiple providers configuration
	Providers []llm.ProviderConfig `yaml:"providers"`

	// Legacy single provider config (fallback)
	Groq struct {
		APIKey     string `yaml:"api_key"`
		ModelName  string `yaml:"model_name"`
		MaxRetries int    `yaml:"max_retries"`
	} `yaml:"groq"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Sender   string `yaml:"sender"`
		Password string `yaml:"password"`
	} `yaml:"smtp"`

	Datasets struct {
		FoundersPath  string `yaml:"founders_path"`
		InvestorsPath string `yaml:"investors_path"`
	} `yaml:"datasets"`

	Matching struct {
		MinScore float64 `yaml:"min_score"`
		// When set, every match sweep also writes its result set as a
		// quoted CSV under this directory.
		ExportDir string `yaml:"export_dir"`
	} `yaml:"matching"`

	Logs struct {
		Dir string `yaml:"dir"`
	} `yaml:"logs"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	MaxFailuresBeforeSwitch int `yaml:"max_failures_before_switch"`
}

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Set defaults
	if config.Server.Port == "" {
		config.Server.Port = "8000"
	}

	if config.Groq.ModelName == "" {
		config.Groq.ModelName = "llama-3.3-70b-versatile"
	}

	if config.Groq.MaxRetries == 0 {
		config.Groq.MaxRetries = 3
	}

	if config.SMTP.Host == "" {
		config.SMTP.Host = "smtp.gmail.com"
	}

	if config.SMTP.Port == 0 {
		config.SMTP.Port = 587
	}

	if config.Datasets.FoundersPath == "" {
		config.Datasets.FoundersPath = "./data/founders.csv"
	}

	if config.Datasets.InvestorsPath == "" {
		config.Datasets.InvestorsPath = "./data/investors.csv"
	}

	if config.Logs.Dir == "" {
		config.Logs.Dir = "./logs"
	}

	if config.Database.Path == "" {
		config.Database.Path = "./data/communications.db"
	}

	if config.MaxFailuresBeforeSwitch == 0 {
		config.MaxFailuresBeforeSwitch = 3
	}

	// Expand environment variables in secrets
	for i := range config.Providers {
		config.Providers[i].APIKey = os.ExpandEnv(config.Providers[i].APIKey)
	}
	config.Groq.APIKey = os.ExpandEnv(config.Groq.APIKey)
	config.SMTP.Sender = os.ExpandEnv(config.SMTP.Sender)
	config.SMTP.Password = os.ExpandEnv(config.SMTP.Password)

	return config, nil
}
