package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DefaultPath            = "./config"
	DefaultCollectInterval = 15 * time.Second
	envPrefix              = "SMSACTIVATE"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Provider smsactivate.Config `mapstructure:"provider"`
	Log      Log                `mapstructure:"log"`
	Metrics  Metrics            `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Metrics struct {
	Enable          bool          `mapstructure:"enable"`
	CollectInterval time.Duration `mapstructure:"collect_interval"`
}

func Load() (*Config, error) {
	return LoadFrom(viper.New(), DefaultPath)
}

// LoadFrom reads config.yml from path into v. A missing file is not an error;
// defaults and SMSACTIVATE_* environment variables still apply.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Metrics.CollectInterval <= 0 {
		cfg.Metrics.CollectInterval = DefaultCollectInterval
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", ":8080")
	v.SetDefault("provider.base_url", smsactivate.DefaultBaseURL)
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.timeout", smsactivate.DefaultTimeout)
	v.SetDefault("provider.ref", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.enable", true)
	v.SetDefault("metrics.collect_interval", DefaultCollectInterval)
}

// Build returns a production zap logger at the configured level.
func (l Log) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	return zapConfig.Build()
}
