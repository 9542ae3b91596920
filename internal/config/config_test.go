package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("PGSSLMODE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Fatalf("port default: %q", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != "1h" {
		t.Fatalf("ttl default: %q", cfg.Auth.TokenTTL)
	}
	if cfg.Postgres.SSLMode != "disable" {
		t.Fatalf("sslmode default: %q", cfg.Postgres.SSLMode)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("origins default: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()
	origins := cfg.Server.AllowedOrigins
	if len(origins) != 2 || origins[0] != "http://a.example" || origins[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %v", origins)
	}
}
