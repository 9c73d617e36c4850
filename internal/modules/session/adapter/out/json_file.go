package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pitwall/internal/modules/session/domain"
	sessionout "pitwall/internal/modules/session/port/out"
	apperrors "pitwall/internal/platform/errors"
)

type JSONSnapshotFile struct{}

func NewJSONSnapshotFile() sessionout.SnapshotFile {
	return JSONSnapshotFile{}
}

func (JSONSnapshotFile) Write(_ context.Context, path string, data domain.AppData) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func (JSONSnapshotFile) Read(_ context.Context, path string) (domain.AppData, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.AppData{}, err
	}
	data := domain.AppData{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return domain.AppData{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidImport, err)
	}
	return data, nil
}
