package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "FITO_CONFIG_FILE"

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"` // mysql|postgres
	DSN    string `mapstructure:"dsn"`
}

type SiteConfig struct {
	Key           string `mapstructure:"key"`
	Brand         string `mapstructure:"brand"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	PublicDir     string `mapstructure:"public_dir"`
}

type AnalyticsConfig struct {
	UmamiWebsiteID string `mapstructure:"umami_website_id"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Configured reports whether chat completion can be used.
func (c OpenAIConfig) Configured() bool { return strings.TrimSpace(c.APIKey) != "" }

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	Folder    string `mapstructure:"folder"`
}

// Configured is true only when all three credentials are present.
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type MediaConfig struct {
	Driver string `mapstructure:"driver"` // auto|local|s3
}

type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Prefix        string `mapstructure:"prefix"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

func (c S3Config) Configured() bool {
	return c.Region != "" && c.Bucket != "" && c.PublicBaseURL != ""
}

type AuthConfig struct {
	Secret            string `mapstructure:"secret"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

type RateLimitConfig struct {
	AskLimit  int           `mapstructure:"ask_limit"`
	AskWindow time.Duration `mapstructure:"ask_window"`
}

type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Site       SiteConfig       `mapstructure:"site"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	Media      MediaConfig      `mapstructure:"media"`
	S3         S3Config         `mapstructure:"s3"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
}

var defaults = map[string]any{
	"http.addr":                  ":8080",
	"log.level":                  "info",
	"db.driver":                  "mysql",
	"db.dsn":                     "",
	"site.key":                   "default",
	"site.brand":                 "Фитоаптека",
	"site.public_base_url":       "http://localhost:8080",
	"site.public_dir":            "./public",
	"analytics.umami_website_id": "",
	"openai.api_key":             "",
	"openai.base_url":            "",
	"openai.model":               "gpt-4o-mini",
	"cloudinary.cloud_name":      "",
	"cloudinary.api_key":         "",
	"cloudinary.api_secret":      "",
	"cloudinary.folder":          "fitoapteka/products",
	"media.driver":               "auto",
	"s3.region":                  "",
	"s3.bucket":                  "",
	"s3.prefix":                  "uploads/products",
	"s3.public_base_url":         "",
	"auth.secret":                "",
	"auth.admin_password_hash":   "",
	"ratelimit.ask_limit":        12,
	"ratelimit.ask_window":       "1m",
}

// Load reads .env (if any), the optional config file and the environment.
// Keys map to env names by upper-casing and replacing "." with "_":
// openai.api_key <-> OPENAI_API_KEY.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := configFilepath(args); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFilepath(args []string) string {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", "", "config file")
	_ = fs.Parse(args)
	if env, ok := os.LookupEnv(configFileEnvName); ok && env != "" {
		return env
	}
	return *path
}

func (c Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.DB.DSN) == "" {
		errs = append(errs, errors.New("db.dsn (DB_DSN) is required"))
	}
	switch c.DB.Driver {
	case "mysql", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unknown db.driver %q", c.DB.Driver))
	}
	switch c.Media.Driver {
	case "auto", "local", "s3":
	default:
		errs = append(errs, fmt.Errorf("unknown media.driver %q", c.Media.Driver))
	}
	if c.RateLimit.AskLimit <= 0 || c.RateLimit.AskWindow <= 0 {
		errs = append(errs, errors.New("ratelimit.ask_limit and ratelimit.ask_window must be positive"))
	}
	return errors.Join(errs...)
}

// LogLevel parses log.level; unknown values fall back to info.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// AdminLoginEnabled reports whether /api/admin/login can issue tokens.
func (c Config) AdminLoginEnabled() bool {
	return c.Auth.Secret != "" && c.Auth.AdminPasswordHash != ""
}
