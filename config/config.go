package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName     string `yaml:"service_name"`
	Symbol          string `yaml:"symbol"`
	LogLevel        string `yaml:"log_level"`
	Input           string `yaml:"input"`
	Output          string `yaml:"output"`
	MetricsTextfile string `yaml:"metrics_textfile"`
	PrintStats      bool   `yaml:"print_stats"`
}

func Default() *AppConfig {
	return &AppConfig{
		ServiceName: "orderbook-sim",
		Symbol:      "SIM",
		LogLevel:    "info",
	}
}

// Load load config from file and environment variables.
// A .env file in the working directory is applied first when present; with
// no file path at all the defaults are returned.
func Load(filePath string) (*AppConfig, error) {
	_ = godotenv.Load()

	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	cfg := Default()
	if len(filePath) == 0 {
		zap.S().Debug("no config file, using defaults")
		return cfg, nil
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
