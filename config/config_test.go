package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test.yaml", `
env:
  env: test
  serviceName: sphere
  debug: true
  log:
    level: debug
    pretty: true
http:
  port: 8080
  timeouts:
    readTimeout: 5s
jwt:
  secret: file-secret
  issuer: sphere
  audience: sphere-clients
  ttl: 45m
`)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Env.ServiceName != "sphere" {
		t.Errorf("serviceName = %q, want %q", cfg.Env.ServiceName, "sphere")
	}
	if !cfg.Env.Debug {
		t.Error("debug = false, want true")
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.Timeouts.ReadTimeout != 5*time.Second {
		t.Errorf("readTimeout = %v, want 5s", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("jwt secret = %q, want %q", cfg.JWT.Secret, "file-secret")
	}
	if cfg.JWT.TTL != 45*time.Minute {
		t.Errorf("jwt ttl = %v, want 45m", cfg.JWT.TTL)
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test.yaml", `
jwt:
  secret: file-secret
  issuer: sphere
`)
	t.Chdir(dir)
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadWithEnv[Config]("test")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt secret = %q, want env override %q", cfg.JWT.Secret, "env-secret")
	}
	if cfg.JWT.Issuer != "sphere" {
		t.Errorf("jwt issuer = %q, want file value %q", cfg.JWT.Issuer, "sphere")
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
