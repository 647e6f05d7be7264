package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         int    `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	Env          string `yaml:"env"`
	CORSOrigin   string `yaml:"cors_origin"`
	ConfigFile   string `yaml:"-"`
}

// Defaults
const (
	DefaultPort         = 5000
	DefaultDatabaseType = "sqlite"
	DefaultEnv          = "development"
	DefaultCORSOrigin   = "*"
	DefaultEnvFile      = ".env"
)

// ParseFlags builds the config. Precedence, highest first: flags, process
// environment, .env file, YAML config file, defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("contractflow", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Env, "env", "", "Environment (development, production, test)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", DefaultEnvFile, "Dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	dotenv, err := readDotenv(envFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = lookup("CONFIG_FILE")
	}
	var file Config
	if cfg.ConfigFile != "" {
		if file, err = readYAML(cfg.ConfigFile); err != nil {
			return Config{}, err
		}
	}

	// Fall back to environment variables, then the config file
	if cfg.Port == 0 {
		if portStr := lookup("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Port != 0 {
			cfg.Port = file.Port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, lookup("DATABASE_URL"), file.DatabaseURL)
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, lookup("DATABASE_TYPE"), file.DatabaseType, DefaultDatabaseType)
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}

	cfg.Env = firstNonEmpty(cfg.Env, lookup("APP_ENV"), file.Env, DefaultEnv)
	cfg.CORSOrigin = firstNonEmpty(cfg.CORSOrigin, lookup("CORS_ORIGIN"), file.CORSOrigin, DefaultCORSOrigin)

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// readDotenv reads key/value pairs without touching the process
// environment. A missing file is not an error.
func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

func readYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
