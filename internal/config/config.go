package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Meals    *MealsConfig    `mapstructure:"meals"`
	Storage  *StorageConfig  `mapstructure:"storage"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// WindowConfig is one daily meal window as "HH:MM" wall-clock strings.
type WindowConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type MealsConfig struct {
	// RefreshInterval is how often a displayed credential is re-evaluated
	// against the meal window calendar.
	RefreshInterval time.Duration           `mapstructure:"refresh_interval"`
	Windows         map[string]WindowConfig `mapstructure:"windows"`
}

type StorageConfig struct {
	ImageDir string `mapstructure:"image_dir"`
	// PublicBase is the URL prefix under which stored images are served.
	PublicBase string `mapstructure:"public_base"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}

// OnChange re-reads the config file whenever it is written and hands the
// freshly unmarshalled config to fn. Used to pick up meal window edits
// without a restart.
func OnChange(fn func(event fsnotify.Event, conf *AppConfig)) {
	viper.OnConfigChange(func(event fsnotify.Event) {
		conf := &AppConfig{}
		if err := viper.Unmarshal(conf); err != nil {
			return
		}

		fn(event, conf)
	})

	viper.WatchConfig()
}
