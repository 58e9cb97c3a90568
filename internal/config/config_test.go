package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func loadIn(t *testing.T, dir string) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadIn(t, t.TempDir())

	if got := cfg.ShortenerAddr(); got != "127.0.0.1:8000" {
		t.Errorf("shortener addr = %q", got)
	}
	if got := cfg.ShortURLBase(); got != "http://127.0.0.1:8000" {
		t.Errorf("short url base = %q", got)
	}
	if cfg.Shortener.CodeLength != 6 || cfg.Shortener.MaxAttempts != 0 {
		t.Errorf("code length/max attempts = %d/%d", cfg.Shortener.CodeLength, cfg.Shortener.MaxAttempts)
	}
	if cfg.Shortener.Database != "urls.db" || cfg.Todo.Database != "tasks.db" {
		t.Errorf("databases = %q/%q", cfg.Shortener.Database, cfg.Todo.Database)
	}
	if got := cfg.TodoAddr(); got != "127.0.0.1:8001" {
		t.Errorf("todo addr = %q", got)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "shortener:\n  port: 9000\n  base_url: https://sho.rt/\ntodo:\n  database: todo-test.db\n"
	if err := os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHORTENER_CODE_LENGTH", "8")

	cfg := loadIn(t, dir)

	if cfg.Shortener.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Shortener.Port)
	}
	if got := cfg.ShortURLBase(); got != "https://sho.rt" {
		t.Errorf("short url base = %q", got)
	}
	if cfg.Shortener.CodeLength != 8 {
		t.Errorf("code length = %d, want 8 from env", cfg.Shortener.CodeLength)
	}
	if cfg.Todo.Database != "todo-test.db" {
		t.Errorf("todo database = %q", cfg.Todo.Database)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	t.Setenv("SHORTENER_CODE_LENGTH", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for a zero code length")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Shortener.Port = 8000
		c.Shortener.CodeLength = 6
		c.Shortener.Database = "urls.db"
		c.Todo.Port = 8001
		c.Todo.Database = "tasks.db"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port too high", func(c *Config) { c.Shortener.Port = 70000 }, true},
		{"todo port zero", func(c *Config) { c.Todo.Port = 0 }, true},
		{"negative attempts", func(c *Config) { c.Shortener.MaxAttempts = -1 }, true},
		{"empty database", func(c *Config) { c.Todo.Database = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
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
