package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CONTACTS_FILE", "")
	t.Setenv("PPROF_ENABLED", "")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if config.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", config.Server.Port)
	}
	if config.Data.WorkbookFile != "contacts.xlsx" {
		t.Errorf("expected default workbook contacts.xlsx, got %s", config.Data.WorkbookFile)
	}
	if config.Profiling.Enabled {
		t.Error("profiling should default to disabled")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CONTACTS_FILE", "/data/contacts.xlsx")
	t.Setenv("PPROF_ENABLED", "true")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if config.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", config.Server.Port)
	}
	if config.Data.WorkbookFile != "/data/contacts.xlsx" {
		t.Errorf("expected configured workbook path, got %s", config.Data.WorkbookFile)
	}
	if !config.Profiling.Enabled {
		t.Error("expected profiling enabled")
	}
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for non-numeric port")
	}
}
