package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("implicit missing config: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	_, err = loadConfig(path, true)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing config: err = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
chart = "/srv/org.json"
listen = ":9090"

[cache]
backend = "redis"
ttl = "90m"

[cache.redis]
addr = "localhost:6379"
db = 2
prefix = "test:"
`)

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Chart != "/srv/org.json" {
		t.Errorf("Chart = %q", cfg.Chart)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	want := cache.Config{
		Backend: cache.BackendRedis,
		TTL:     cache.Duration{Duration: 90 * time.Minute},
		Redis:   cache.RedisSettings{Addr: "localhost:6379", DB: 2, Prefix: "test:"},
	}
	if cfg.Cache != want {
		t.Errorf("Cache = %+v, want %+v", cfg.Cache, want)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `chart = "org.yaml"`)

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Listen != defaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, defaultListen)
	}
	if cfg.Cache.TTL.Duration != defaultCacheTTL {
		t.Errorf("TTL = %v, want %v", cfg.Cache.TTL.Duration, defaultCacheTTL)
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := writeConfig(t, "chart = \"~/org.json\"\n[cache]\ndir = \"~/cache\"\n")

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if want := filepath.Join(home, "org.json"); cfg.Chart != want {
		t.Errorf("Chart = %q, want %q", cfg.Chart, want)
	}
	if want := filepath.Join(home, "cache"); cfg.Cache.Dir != want {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "blue"`},
		{"unknown nested key", "[cache]\nbackend = \"file\"\nsize = 3\n"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n"},
		{"bad listen", `listen = "nowhere"`},
		{"syntax", `chart = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body), true); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
