package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultConfigPath = "configs/config.yaml"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Sequence SequenceConfig `mapstructure:"sequence"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Geo      GeoConfig      `mapstructure:"geo"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Mode         string        `mapstructure:"mode"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DynamoDBConfig holds AWS connection settings. Endpoint is set for DynamoDB Local.
type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type TablesConfig struct {
	Valuations   string `mapstructure:"valuations"`
	PricingRules string `mapstructure:"pricing_rules"`
	Counters     string `mapstructure:"counters"`
}

// SequenceConfig tunes the order sequence allocator.
type SequenceConfig struct {
	CounterID   string        `mapstructure:"counter_id"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
	MaxBackoff  time.Duration `mapstructure:"max_backoff"`
}

// PricingConfig holds the power-off heuristic applied when no per-item
// override percentage is supplied.
type PricingConfig struct {
	PowerOffBrands           []string `mapstructure:"power_off_brands"`
	PowerOffDeductionPercent float64  `mapstructure:"power_off_deduction_percent"`
}

// GeoConfig points at an external postal range table. Empty means the
// embedded table.
type GeoConfig struct {
	RegionsFile string `mapstructure:"regions_file"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load reads configuration from configPath and the environment. A missing
// file is not an error; defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.mode", "release")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")

	v.SetDefault("tables.valuations", "valuations")
	v.SetDefault("tables.pricing_rules", "pricing_rules")
	v.SetDefault("tables.counters", "counters")

	v.SetDefault("sequence.counter_id", "order_sequence")
	v.SetDefault("sequence.max_attempts", 5)
	v.SetDefault("sequence.base_backoff", 25*time.Millisecond)
	v.SetDefault("sequence.max_backoff", 400*time.Millisecond)

	v.SetDefault("pricing.power_off_brands", []string{"apple", "samsung"})
	v.SetDefault("pricing.power_off_deduction_percent", 75)

	v.SetDefault("geo.regions_file", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars maps the conventional deployment variables onto config keys.
func bindEnvVars(v *viper.Viper) error {
	bindings := map[string][]string{
		"dynamodb.region":            {"AWS_REGION"},
		"dynamodb.endpoint":          {"DYNAMODB_ENDPOINT"},
		"dynamodb.access_key_id":     {"AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key": {"AWS_SECRET_ACCESS_KEY"},
		"tables.valuations":          {"VALUATIONS_TABLE"},
		"tables.pricing_rules":       {"PRICING_RULES_TABLE"},
		"tables.counters":            {"COUNTERS_TABLE"},
		"server.port":                {"PORT"},
		"logger.level":               {"LOG_LEVEL"},
		"logger.format":              {"LOG_FORMAT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Tables.Valuations == "" || c.Tables.PricingRules == "" || c.Tables.Counters == "" {
		return fmt.Errorf("table names are required")
	}
	if c.Sequence.MaxAttempts < 1 {
		return fmt.Errorf("sequence.max_attempts must be at least 1")
	}
	if c.Sequence.BaseBackoff < 0 || c.Sequence.MaxBackoff < c.Sequence.BaseBackoff {
		return fmt.Errorf("sequence backoff must satisfy 0 <= base_backoff <= max_backoff")
	}
	if c.Pricing.PowerOffDeductionPercent < 0 || c.Pricing.PowerOffDeductionPercent > 100 {
		return fmt.Errorf("pricing.power_off_deduction_percent must be within [0, 100]")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test")
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console")
	}
	return nil
}
