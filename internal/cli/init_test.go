package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CASH_LIMIT", "CALORIES_LIMIT", "CURRENCY", "RECORDS_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_RecordsFileArgumentOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	file := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(file, []byte("100;lunch\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("RECORDS_FILE", "/nonexistent/records.txt")

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("stale RECORDS_FILE should be replaced before validation: %v", err)
	}
	if cfg.RecordsFile != file {
		t.Fatalf("RecordsFile = %q, want %q", cfg.RecordsFile, file)
	}
}

func TestLoadConfig_EnvRecordsFileValidated(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RECORDS_FILE", "/nonexistent/records.txt")

	_, err := LoadConfig("")
	if err == nil || !strings.Contains(err.Error(), "records file does not exist: /nonexistent/records.txt") {
		t.Fatalf("expected missing records file error, got %v", err)
	}
}

func TestLoadConfig_MissingArgumentFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := LoadConfig("/nonexistent/arg.txt")
	if err == nil || !strings.Contains(err.Error(), "records file does not exist: /nonexistent/arg.txt") {
		t.Fatalf("expected missing records file error, got %v", err)
	}
}
