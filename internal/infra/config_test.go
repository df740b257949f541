package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("IDENTITY_API_URL", "https://identity.example.com/v1")
	t.Setenv("IDENTITY_SECRET_KEY", "sk_test")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q, want en", cfg.DefaultLocale)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin = %d, want 60", cfg.RateLimitPerMin)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSOrigins = %#v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRequiredVars(t *testing.T) {
	t.Setenv("IDENTITY_API_URL", "")
	t.Setenv("IDENTITY_SECRET_KEY", "sk_test")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig without IDENTITY_API_URL expected error")
	}

	t.Setenv("IDENTITY_API_URL", "https://identity.example.com/v1")
	t.Setenv("IDENTITY_SECRET_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig without IDENTITY_SECRET_KEY expected error")
	}
}

func TestLoadConfigCORSList(t *testing.T) {
	t.Setenv("IDENTITY_API_URL", "https://identity.example.com/v1")
	t.Setenv("IDENTITY_SECRET_KEY", "sk_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("CORSOrigins = %#v", cfg.CORSOrigins)
	}
}
