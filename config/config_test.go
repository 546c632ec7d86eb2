package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_HTTP_ADDR", "")
	t.Setenv("BANK_ENV", "")
	t.Setenv("BANK_CORS_ORIGINS", "")

	cfg := Load()
	if cfg.ServeHTTP() || cfg.Environment != EnvDevelopment || len(cfg.CORSOrigins) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_HTTP_ADDR", ":9090")
	t.Setenv("BANK_ENV", "production")
	t.Setenv("BANK_CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	if !cfg.ServeHTTP() || cfg.HTTPAddr != ":9090" || !cfg.IsProduction() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("origins=%q", cfg.CORSOrigins)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("BANK_HTTP_ADDR", "")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BANK_HTTP_ADDR=:7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("BANK_HTTP_ADDR")

	if cfg := Load(); cfg.HTTPAddr != ":7070" {
		t.Fatalf("HTTPAddr=%q want=:7070", cfg.HTTPAddr)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
