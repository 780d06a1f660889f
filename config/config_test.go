package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Auth    struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"auth"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", "base_url: https://push.example.com/api/v1/\nauth:\n  username: alice\n")

	var cfg testConfig
	if err := Load("example", &cfg, WithConfigFile(file)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://push.example.com/api/v1/" {
		t.Errorf("base_url = %q", cfg.BaseURL)
	}
	if cfg.Auth.Username != "alice" {
		t.Errorf("auth.username = %q", cfg.Auth.Username)
	}
}

func TestLoad_EnvFileOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "config.yml", "auth:\n  username: from-yaml\n")
	env := writeFile(t, dir, ".env", "AUTH_USERNAME=from-env\n")
	t.Cleanup(func() { os.Unsetenv("AUTH_USERNAME") })

	var cfg testConfig
	if err := Load("example", &cfg, WithConfigFile(yml), WithEnvFile(env)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.Username != "from-env" {
		t.Errorf("auth.username = %q, want from-env", cfg.Auth.Username)
	}
}

func TestLoad_MissingFilesIsFine(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var cfg testConfig
	if err := Load("example", &cfg); err != nil {
		t.Fatalf("load with no files should succeed: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.yml", "base_url: [unclosed\n")

	var cfg testConfig
	if err := Load("example", &cfg, WithConfigFile(file)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
