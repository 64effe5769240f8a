package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	FolderModeFixed   = "fixed"
	FolderModeMapped  = "mapped"
	FolderModeRequest = "request"
)

type Config struct {
	GoogleServiceAccountJSON string

	FolderMode string
	FolderID   string
	FolderMap  map[string]string

	HTTPAddr string

	TelegramToken       string
	TelegramAdminChatID int64
}

func FromEnv() (Config, error) {
	var c Config
	c.GoogleServiceAccountJSON = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))

	c.FolderMode = strings.TrimSpace(os.Getenv("FOLDER_MODE"))
	if c.FolderMode == "" {
		c.FolderMode = FolderModeFixed
	}
	c.FolderID = strings.TrimSpace(os.Getenv("DRIVE_FOLDER_ID"))
	c.FolderMap = parseFolderMap(os.Getenv("DRIVE_FOLDER_MAP"))

	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}

	c.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))

	if c.GoogleServiceAccountJSON == "" {
		return c, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is empty")
	}

	switch c.FolderMode {
	case FolderModeFixed:
		if c.FolderID == "" {
			return c, fmt.Errorf("DRIVE_FOLDER_ID is empty (required for FOLDER_MODE=fixed)")
		}
	case FolderModeMapped:
		if len(c.FolderMap) == 0 {
			return c, fmt.Errorf("DRIVE_FOLDER_MAP is empty (required for FOLDER_MODE=mapped)")
		}
	case FolderModeRequest:
		// folder id arrives with each request
	default:
		return c, fmt.Errorf("unknown FOLDER_MODE: %s", c.FolderMode)
	}

	if c.TelegramToken != "" {
		raw := strings.TrimSpace(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID invalid: %q", raw)
		}
		c.TelegramAdminChatID = id
	}

	return c, nil
}

// parseFolderMap parses "label=folderID,label=folderID". Malformed
// pairs are skipped.
func parseFolderMap(raw string) map[string]string {
	m := map[string]string{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m
	}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		label, id, ok := strings.Cut(p, "=")
		label = strings.TrimSpace(label)
		id = strings.TrimSpace(id)
		if !ok || label == "" || id == "" {
			continue
		}
		m[label] = id
	}
	return m
}
