package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// InsecureJWTSecret is only acceptable outside release mode.
const InsecureJWTSecret = "soceng-lab-secret-key-change-in-production"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	LLM       LLMConfig
	Log       LogConfig
	Seed      SeedConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// path of the config file actually read, empty when running from env only
	File string `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// LLMConfig holds transport settings for the upstream model providers.
// Provider credentials live in the llm_configs table, not here.
type LLMConfig struct {
	GeminiBaseURL  string        `mapstructure:"gemini_base_url"`
	ClaudeBaseURL  string        `mapstructure:"claude_base_url"`
	GroqBaseURL    string        `mapstructure:"groq_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ChatTimeout    time.Duration `mapstructure:"chat_timeout"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	DSN       string `mapstructure:"dsn"`
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool `mapstructure:"parse_time"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LogConfig controls the rotating JSON log file. Level overrides the
// mode-derived level when set (debug, info, warn, error).
type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

type SeedConfig struct {
	Username string
	Password string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8001")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.dbname", "Pretexta")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)

	v.SetDefault("jwt.secret", InsecureJWTSecret)
	v.SetDefault("jwt.expire_hours", 24)

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)

	v.SetDefault("llm.gemini_base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("llm.claude_base_url", "https://api.anthropic.com")
	v.SetDefault("llm.groq_base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.request_timeout", 60*time.Second)
	v.SetDefault("llm.chat_timeout", 15*time.Second)

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("tracing.collector_endpoint", "http://localhost:14268/api/traces")

	v.SetDefault("seed.username", "soceng")
	v.SetDefault("seed.password", "Cialdini@2025!")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.max_requests", 20)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PRETEXTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.dsn", "DATABASE_DSN")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// LLM transport
	v.BindEnv("llm.gemini_base_url", "LLM_GEMINI_BASE_URL")
	v.BindEnv("llm.claude_base_url", "LLM_CLAUDE_BASE_URL")
	v.BindEnv("llm.groq_base_url", "LLM_GROQ_BASE_URL")
	v.BindEnv("llm.request_timeout", "LLM_REQUEST_TIMEOUT")
	v.BindEnv("llm.chat_timeout", "LLM_CHAT_TIMEOUT")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Logging
	v.BindEnv("log.level", "LOG_LEVEL")

	// Seed account
	v.BindEnv("seed.username", "SEED_USERNAME")
	v.BindEnv("seed.password", "SEED_PASSWORD")

	// CORS
	v.BindEnv("cors.origins_csv", "CORS_ORIGINS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	// CORS_ORIGINS is a comma separated list
	if raw := v.GetString("cors.origins_csv"); raw != "" {
		cfg.CORS.AllowedOrigins = splitOrigins(raw)
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	return &cfg, nil
}

// ConnectionString returns the explicit connection string or builds a MySQL one from parts.
func (c DatabaseConfig) ConnectionString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.Charset,
		c.ParseTime,
	)
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
