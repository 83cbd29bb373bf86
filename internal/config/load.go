package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable name,
	// e.g. TASKIO_SERVER_LOG_LEVEL for server.log_level.
	EnvPrefix = "TASKIO"

	// DefaultPort is used when neither PORT nor a config value is set.
	DefaultPort = 3000

	defaultConfigName = "taskio"
	defaultEnvFile    = ".env"
)

// ErrNoConfigFile is returned by Watch when there is no file to watch.
var ErrNoConfigFile = errors.New("no config file in use")

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, taskio.yaml is
	// searched for in "." and "./config" and may be absent.
	ConfigFile string

	// EnvFile is a dotenv file loaded into the process environment.
	// When empty, ".env" is loaded if present.
	EnvFile string
}

// Load configuration from defaults, an optional config file and environment
// variables. Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithOptions(Options{})
}

// LoadWithOptions is Load with explicit file locations.
func LoadWithOptions(opts Options) (*Config, error) {
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	v, err := newViper(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch reloads the config file whenever it changes and passes each valid
// result to onChange. Invalid reloads go to onError and are otherwise ignored.
// Returns ErrNoConfigFile when no config file was found.
func Watch(configFile string, onChange func(*Config), onError func(error)) error {
	v, err := newViper(configFile)
	if err != nil {
		return err
	}
	if v.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()

	return nil
}

func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare PORT variable wins over TASKIO_SERVER_PORT and the config file.
	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		v.Set("server.port", port)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.api_prefix", "/api/v1")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.read_header_timeout_seconds", 5)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"*"})

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing default file is not an error.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
