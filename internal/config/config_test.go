package config

import (
	"reflect"
	"testing"
)

func TestFromEnvWithFixedFolder(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "testdata/sa.json")
	t.Setenv("FOLDER_MODE", "")
	t.Setenv("DRIVE_FOLDER_ID", "folder-123")
	t.Setenv("DRIVE_FOLDER_MAP", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Unexpected error returned from FromEnv (%v)", err)
	}

	if cfg.FolderMode != FolderModeFixed {
		t.Errorf("Incorrect folder mode\n   expected: %v\n   got:      %v\n", FolderModeFixed, cfg.FolderMode)
	}

	if cfg.FolderID != "folder-123" {
		t.Errorf("Incorrect folder id\n   expected: %v\n   got:      %v\n", "folder-123", cfg.FolderID)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Incorrect HTTP addr\n   expected: %v\n   got:      %v\n", ":8080", cfg.HTTPAddr)
	}
}

func TestFromEnvWithoutCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("DRIVE_FOLDER_ID", "folder-123")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("Expected error for missing credentials path, got %v", err)
	}
}

func TestFromEnvFixedWithoutFolderID(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "testdata/sa.json")
	t.Setenv("FOLDER_MODE", "fixed")
	t.Setenv("DRIVE_FOLDER_ID", "")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("Expected error for missing DRIVE_FOLDER_ID, got %v", err)
	}
}

func TestFromEnvMappedWithoutMap(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "testdata/sa.json")
	t.Setenv("FOLDER_MODE", "mapped")
	t.Setenv("DRIVE_FOLDER_MAP", "")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("Expected error for missing DRIVE_FOLDER_MAP, got %v", err)
	}
}

func TestFromEnvWithUnknownMode(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "testdata/sa.json")
	t.Setenv("FOLDER_MODE", "sideways")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("Expected error for unknown FOLDER_MODE, got %v", err)
	}
}

func TestFromEnvWithInvalidAdminChatID(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "testdata/sa.json")
	t.Setenv("FOLDER_MODE", "fixed")
	t.Setenv("DRIVE_FOLDER_ID", "folder-123")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("Expected error for invalid TELEGRAM_ADMIN_CHAT_ID, got %v", err)
	}
}

func TestParseFolderMap(t *testing.T) {
	expected := map[string]string{
		"invoices": "folder-a",
		"receipts": "folder-b",
	}

	m := parseFolderMap(" invoices=folder-a, receipts = folder-b ,, bad-pair ")

	if !reflect.DeepEqual(m, expected) {
		t.Errorf("Incorrect folder map\n   expected: %v\n   got:      %v\n", expected, m)
	}
}
