// Package config loads range simulator settings through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is looked up in the directory handed to Load.
const FileName = "rangesim.cfg.json"

type PhysicsConfig struct {
	Gravity float64 `mapstructure:"gravity"`
}

type HandlingConfig struct {
	Socket        string  `mapstructure:"socket"`
	PickupRadius  float64 `mapstructure:"pickupRadius"`
	AttackMontage string  `mapstructure:"attackMontage"`
}

type CombatLogConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Path of the sqlite file. Empty keeps the log in memory.
	Path string `mapstructure:"path"`
}

// TelemetryConfig controls metric export. An empty File writes metrics to
// stderr.
type TelemetryConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	ServiceName string        `mapstructure:"serviceName"`
	File        string        `mapstructure:"file"`
	Interval    time.Duration `mapstructure:"interval"`
}

// Settings is the typed view of the loaded configuration.
type Settings struct {
	LogLevel   string          `mapstructure:"logLevel"`
	LogFile    string          `mapstructure:"logFile"`
	Tick       time.Duration   `mapstructure:"tick"`
	PrefabsDir string          `mapstructure:"prefabsDir"`
	Physics    PhysicsConfig   `mapstructure:"physics"`
	Handling   HandlingConfig  `mapstructure:"handling"`
	CombatLog  CombatLogConfig `mapstructure:"combatLog"`
	Telemetry  TelemetryConfig `mapstructure:"telemetry"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("tick", "10ms")
	viper.SetDefault("prefabsDir", "prefabs")

	viper.SetDefault("physics.gravity", -980.0)

	viper.SetDefault("handling.socket", "hand_r")
	viper.SetDefault("handling.pickupRadius", 150.0)
	viper.SetDefault("handling.attackMontage", "")

	viper.SetDefault("combatLog.enabled", true)
	viper.SetDefault("combatLog.path", "")

	viper.SetDefault("telemetry.enabled", true)
	viper.SetDefault("telemetry.serviceName", "rangesim")
	viper.SetDefault("telemetry.file", "")
	viper.SetDefault("telemetry.interval", "10s")
}

// Load reads FileName from configDir over the defaults. A missing file is
// not an error; RANGESIM_* environment variables override both.
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("rangesim")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read %s: %w", FileName, err)
		}
	}
	return Current()
}

// Current decodes whatever viper holds right now.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if s.Tick <= 0 {
		return Settings{}, fmt.Errorf("config: tick must be positive, got %v", s.Tick)
	}
	if s.Telemetry.Interval < 0 {
		return Settings{}, fmt.Errorf("config: telemetry interval %v is negative", s.Telemetry.Interval)
	}
	if s.Handling.PickupRadius < 0 {
		return Settings{}, fmt.Errorf("config: pickup radius %v is negative", s.Handling.PickupRadius)
	}
	return s, nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}
