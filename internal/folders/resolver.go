package folders

import (
	"fmt"

	"sheetdrop/internal/config"
)

// Resolver picks the Drive folder a submission lands in. The three
// implementations cover the three ways deployments select folders:
// one fixed folder, a folderType label mapped to a folder id, or a
// folder id supplied in the request body.
type Resolver interface {
	Resolve(folderType, requestFolderID string) (string, error)
}

func New(cfg config.Config) (Resolver, error) {
	switch cfg.FolderMode {
	case config.FolderModeFixed:
		return fixed{id: cfg.FolderID}, nil
	case config.FolderModeMapped:
		return mapped{m: cfg.FolderMap}, nil
	case config.FolderModeRequest:
		return fromRequest{}, nil
	default:
		return nil, fmt.Errorf("unknown folder mode: %s", cfg.FolderMode)
	}
}

type fixed struct {
	id string
}

func (f fixed) Resolve(string, string) (string, error) {
	return f.id, nil
}

type mapped struct {
	m map[string]string
}

func (r mapped) Resolve(folderType, _ string) (string, error) {
	if folderType == "" {
		return "", fmt.Errorf("folderType is required")
	}
	id, ok := r.m[folderType]
	if !ok {
		return "", fmt.Errorf("unknown folderType: %s", folderType)
	}
	return id, nil
}

type fromRequest struct{}

func (fromRequest) Resolve(_, requestFolderID string) (string, error) {
	if requestFolderID == "" {
		return "", fmt.Errorf("folderId is required")
	}
	return requestFolderID, nil
}
