package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProductAPI != defaultProductAPI {
		t.Fatalf("ProductAPI = %q, want %q", cfg.ProductAPI, defaultProductAPI)
	}
	if cfg.BerryAPI != defaultBerryAPI {
		t.Fatalf("BerryAPI = %q, want %q", cfg.BerryAPI, defaultBerryAPI)
	}

	wantState, err := expandPath(defaultStatePath)
	if err != nil {
		t.Fatalf("expandPath(defaultStatePath) returned error: %v", err)
	}
	if cfg.StatePath != wantState {
		t.Fatalf("StatePath = %q, want %q", cfg.StatePath, wantState)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.BerryLimit != defaultBerryLimit {
		t.Fatalf("BerryLimit = %d, want %d", cfg.BerryLimit, defaultBerryLimit)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
product_api = "  http://localhost:8080/products  "
berry_api = " http://localhost:8081/berry/ "
state_path = "  ~/.larder/state.db  "
log_level = " DEBUG "
request_timeout = "750ms"
berry_limit = 20
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProductAPI != "http://localhost:8080/products" {
		t.Fatalf("ProductAPI = %q", cfg.ProductAPI)
	}
	if cfg.BerryAPI != "http://localhost:8081/berry/" {
		t.Fatalf("BerryAPI = %q", cfg.BerryAPI)
	}
	if cfg.StatePath != filepath.Join(home, ".larder", "state.db") {
		t.Fatalf("StatePath = %q, want it under HOME %q", cfg.StatePath, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 750*time.Millisecond {
		t.Fatalf("RequestTimeout = %v, want 750ms", cfg.RequestTimeout)
	}
	if cfg.BerryLimit != 20 {
		t.Fatalf("BerryLimit = %d, want 20", cfg.BerryLimit)
	}
}

func TestLoad_MemoryStatePathIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`state_path = ":memory:"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.InMemoryState() {
		t.Fatalf("StatePath = %q, want :memory:", cfg.StatePath)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
product_api = "   "
log_path = ""
request_timeout = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProductAPI != defaultProductAPI {
		t.Fatalf("ProductAPI = %q, want %q", cfg.ProductAPI, defaultProductAPI)
	}
	wantLog, err := expandPath(defaultLogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultLogPath) returned error: %v", err)
	}
	if cfg.LogPath != wantLog {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLog)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"toml":    `product_api = [`,
		"timeout": `request_timeout = "soon"`,
		"limit":   `berry_limit = -1`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
