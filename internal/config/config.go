package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "configs/development.yaml"

type Config struct {
	Server Server `yaml:"server"`

	Database Database `yaml:"database"`

	JWT JWT `yaml:"jwt"`

	Auth Auth `yaml:"auth"`

	Validation Validation `yaml:"validation"`

	Log Log `yaml:"log"`

	Settings Settings `yaml:"settings"`
}

type Server struct {
	Address string `yaml:"address"`
	// AllowedOrigins restricts websocket upgrades; empty allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Auth struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// Validation holds the numeric policy. Negative prices, stock and amounts
// are accepted unless AllowNegative is switched off.
type Validation struct {
	AllowNegative bool `yaml:"allow_negative"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Settings struct {
	Path string `yaml:"path"`
}

// Database selects the backing store. Driver is "sqlite" (embedded, default)
// or "postgres". DSN, when set, wins over the individual fields.
type Database struct {
	Driver       string `yaml:"driver"`
	DSN          string `yaml:"dsn"`
	Path         string `yaml:"path"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	DBName       string `yaml:"dbname"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// ConnString returns the driver-specific data source name.
func (d Database) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	default:
		return d.Path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
}

// MigrateURL returns the URL form golang-migrate expects for the same store.
func (d Database) MigrateURL() string {
	switch d.Driver {
	case "postgres":
		if d.DSN != "" {
			return d.DSN
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
	default:
		return "sqlite://" + d.ConnString()
	}
}

// Default returns a configuration that runs against a local SQLite file.
func Default() *Config {
	return &Config{
		Server: Server{Address: ":8080"},
		Database: Database{
			Driver:       "sqlite",
			Path:         "embroidery.db",
			Port:         5432,
			SSLMode:      "disable",
			MaxOpenConns: 1,
		},
		JWT:        JWT{ExpiresIn: 12},
		Auth:       Auth{BcryptCost: 10},
		Validation: Validation{AllowNegative: true},
		Log:        Log{Level: "info", Pretty: true},
		Settings:   Settings{Path: "theme.json"},
	}
}

// Load reads the YAML file at CONFIG_PATH (or the development default) on
// top of Default, then applies environment overrides. A missing file is not
// an error; a malformed one is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath := defaultConfigPath
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	cfg := Default()

	f, err := os.Open(configPath)
	switch {
	case err == nil:
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", configPath)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrapf(err, "open config %s", configPath)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Address = getEnv("SERVER_ADDRESS", cfg.Server.Address)
	cfg.Database.Driver = getEnv("DATABASE_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnv("DATABASE_DSN", cfg.Database.DSN)
	cfg.Database.Path = getEnv("DATABASE_PATH", cfg.Database.Path)
	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Settings.Path = getEnv("SETTINGS_PATH", cfg.Settings.Path)
	cfg.Auth.BcryptCost = getEnvInt("BCRYPT_COST", cfg.Auth.BcryptCost)
	cfg.Validation.AllowNegative = getEnvBool("ALLOW_NEGATIVE", cfg.Validation.AllowNegative)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return errors.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == "sqlite" && c.Database.DSN == "" && c.Database.Path == "" {
		return errors.New("database.path is required for sqlite")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
