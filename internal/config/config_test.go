package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(FileEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
	if cfg.Output.Prompt != "> " {
		t.Errorf("Output.Prompt = %q, want %q", cfg.Output.Prompt, "> ")
	}
	if cfg.Table.Schema != "" {
		t.Errorf("Table.Schema = %q, want empty", cfg.Table.Schema)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv(FileEnv, "")
	t.Setenv("TABLED_LOG_LEVEL", "debug")
	t.Setenv("TABLED_OUTPUT", "json")
	t.Setenv("TABLED_SCHEMA", "name:str,age:i64")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Table.Schema != "name:str,age:i64" {
		t.Errorf("Table.Schema = %q, want %q", cfg.Table.Schema, "name:str,age:i64")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabled.yaml")
	data := "logging:\n  format: json\noutput:\n  prompt: \"tbl> \"\ntable:\n  schema: id:i64\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(FileEnv, path)
	t.Setenv("TABLED_LOG_FORMAT", "text")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Format != "text" {
		t.Errorf("env must override file: Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
	if cfg.Output.Prompt != "tbl> " {
		t.Errorf("Output.Prompt = %q, want %q", cfg.Output.Prompt, "tbl> ")
	}
	if cfg.Table.Schema != "id:i64" {
		t.Errorf("Table.Schema = %q, want %q", cfg.Table.Schema, "id:i64")
	}
}

func TestLoad_FileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabled.yaml")
	if err := os.WriteFile(path, []byte("output:\n  colour: red\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(FileEnv, path)

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unknown key, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "loud", Format: "xml"},
		Output:  OutputConfig{Format: "csv"},
		Table:   TableConfig{Schema: "name:string"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	for _, want := range []string{"TABLED_LOG_LEVEL", "TABLED_LOG_FORMAT", "TABLED_OUTPUT", "TABLED_SCHEMA"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %v, want mention of %s", err, want)
		}
	}
}
