package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.InventoryChannel != "inventory:updates" {
		t.Errorf("Expected default inventory channel, got %q", cfg.InventoryChannel)
	}
	if cfg.AgentTimeout != 30*time.Second {
		t.Errorf("Expected default agent timeout 30s, got %v", cfg.AgentTimeout)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("Expected default idle timeout 30m, got %v", cfg.IdleTimeout)
	}
}

func TestLoad_DurationFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AGENT_TIMEOUT", "45s")
	t.Setenv("IDLE_TIMEOUT", "600")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AgentTimeout != 45*time.Second {
		t.Errorf("Expected 45s agent timeout, got %v", cfg.AgentTimeout)
	}
	// Bare integers are seconds.
	if cfg.IdleTimeout != 600*time.Second {
		t.Errorf("Expected 600s idle timeout, got %v", cfg.IdleTimeout)
	}
}

func TestValidate_IdleTimeoutMustExceedHeartbeat(t *testing.T) {
	cfg := &Config{
		Port:              "8080",
		DBPath:            "./data/test.db",
		JWTSecret:         "secret",
		InventoryChannel:  "inventory:updates",
		AgentTimeout:      30 * time.Second,
		HeartbeatInterval: time.Minute,
		IdleTimeout:       time.Minute,
		SessionRetention:  time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error when IDLE_TIMEOUT <= HEARTBEAT_INTERVAL")
	}
}

func TestIsDevelopment(t *testing.T) {
	cases := []struct {
		frontendURL string
		want        bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:3000", true},
		{"https://shop.example.com", false},
	}

	for _, tc := range cases {
		cfg := &Config{FrontendURL: tc.frontendURL}
		if got := cfg.IsDevelopment(); got != tc.want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tc.frontendURL, got, tc.want)
		}
	}
}
