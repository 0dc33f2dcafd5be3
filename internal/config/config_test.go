package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Bind == "" || cfg.Server.Port == 0 {
		t.Errorf("incomplete server defaults: %+v", cfg.Server)
	}
	if got := cfg.ListenAddr(); got != "127.0.0.1:38666" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:38666", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HAMLET_BIND", "0.0.0.0")
	t.Setenv("HAMLET_PORT", "9000")
	t.Setenv("HAMLET_DB_PATH", "/tmp/hamlet-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr() != "0.0.0.0:9000" {
		t.Errorf("ListenAddr = %q, want 0.0.0.0:9000", cfg.ListenAddr())
	}
	if cfg.Database.Path != "/tmp/hamlet-test.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}
