package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8001" || cfg.Database.DBName != "Pretexta" {
		t.Fatalf("unexpected defaults: %+v", cfg.Server)
	}
	if cfg.JWT.ExpireTime != 24*time.Hour {
		t.Fatalf("expire = %v", cfg.JWT.ExpireTime)
	}
	if cfg.LLM.ChatTimeout != 15*time.Second || cfg.LLM.RequestTimeout != 60*time.Second {
		t.Fatalf("llm timeouts = %+v", cfg.LLM)
	}
	if cfg.Seed.Username != "soceng" {
		t.Fatalf("seed user = %q", cfg.Seed.Username)
	}
	if cfg.File != "" {
		t.Fatalf("no file expected, got %q", cfg.File)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://lab.example.com")
	t.Setenv("DB_NAME", "pretexta_test")
	t.Setenv("JWT_SECRET", "an-env-provided-secret-of-sufficient-length")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://lab.example.com" {
		t.Fatalf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Database.DBName != "pretexta_test" {
		t.Fatalf("dbname = %q", cfg.Database.DBName)
	}
	if cfg.JWT.Secret != "an-env-provided-secret-of-sufficient-length" {
		t.Fatalf("secret not taken from env")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: \"9000\"\nredis:\n  cache_ttl: 30s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9000" || cfg.Redis.CacheTTL != 30*time.Second {
		t.Fatalf("file values not applied: port=%s ttl=%v", cfg.Server.Port, cfg.Redis.CacheTTL)
	}
	if cfg.File == "" {
		t.Fatal("expected the config file path to be recorded")
	}
}

func TestReleaseModeRejectsShortSecret(t *testing.T) {
	t.Setenv("SERVER_MODE", "release")
	t.Setenv("JWT_SECRET", "short")

	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("expected short secret to be rejected in release mode")
	}
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{User: "root", Password: "pw", Host: "db", Port: 3306, DBName: "Pretexta", Charset: "utf8mb4", ParseTime: true}
	want := "root:pw@tcp(db:3306)/Pretexta?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := db.ConnectionString(); got != want {
		t.Fatalf("got %q", got)
	}

	db.DSN = "explicit"
	if db.ConnectionString() != "explicit" {
		t.Fatal("explicit DSN must win")
	}
}
