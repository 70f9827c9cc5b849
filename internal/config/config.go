package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"log"
	"os"
	"strings"
	"time"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage `yaml:"storage"`
	Auth       Auth    `yaml:"auth"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	StaticDir   string        `yaml:"static_dir" env:"STATIC_DIR"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	UsersPath  string `yaml:"users_path" env:"AUTHORIZED_USERS_PATH" env-default:"authorized_users.json"`
	EventsPath string `yaml:"events_path" env:"EVENTS_DB_PATH" env-default:"db.json"`
	DSN        string `yaml:"dsn" env:"DATABASE_DSN"`
}

type Auth struct {
	GoogleClientID     string        `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"GOOGLE_CLIENT_SECRET"`
	CallbackURL        string        `yaml:"callback_url" env:"GOOGLE_CALLBACK_URL" env-default:"http://localhost:3001/auth/google/callback"`
	SessionSecret      string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	SessionTTL         time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
	SecureCookies      bool          `yaml:"secure_cookies" env:"SECURE_COOKIES" env-default:"false"`
	AdminEmail         string        `yaml:"admin_email" env:"ADMIN_EMAIL" env-required:"true"`
}

// MustLoad reads the config file named by CONFIG_PATH, or the environment
// alone when CONFIG_PATH is unset. A .env file in the working directory is
// loaded first if present.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	var cfg Config

	if err := read(configPath, &cfg); err != nil {
		return nil, err
	}

	cfg.Auth.AdminEmail = normalizeEmail(cfg.Auth.AdminEmail)

	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Tooling is the part of Config needed by offline tools that manage the
// stores directly. It does not require the session secret.
type Tooling struct {
	Storage Storage `yaml:"storage"`
	Auth    struct {
		AdminEmail string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	} `yaml:"auth"`
}

func LoadTooling(configPath string) (*Tooling, error) {
	var cfg Tooling

	if err := read(configPath, &cfg); err != nil {
		return nil, err
	}

	cfg.Auth.AdminEmail = normalizeEmail(cfg.Auth.AdminEmail)

	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func read(configPath string, cfg any) error {
	_ = godotenv.Load()

	if configPath == "" {
		return cleanenv.ReadEnv(cfg)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}

	return cleanenv.ReadConfig(configPath, cfg)
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverFile:
	case DriverPostgres, DriverSQLite:
		if s.DSN == "" {
			return fmt.Errorf("storage driver %q requires a dsn", s.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
