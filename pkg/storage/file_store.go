package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/logger"
)

// FileStore keeps the registry in one indented JSON file keyed by slug.
// Non-ASCII characters are written literally.
type FileStore struct {
	path string
	log  *logger.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.GetLogger().WithField("component", "file_store"),
	}
}

// Path returns the registry file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (*catalog.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.WithField("path", s.path).Debug("No registry file yet, starting empty")
			return catalog.NewRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	reg := catalog.NewRegistry()
	if len(bytes.TrimSpace(data)) == 0 {
		return reg, nil
	}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to decode registry %s: %w", s.path, err)
	}
	return reg, nil
}

func (s *FileStore) Save(ctx context.Context, reg *catalog.Registry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := reg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent registry: %w", err)
	}
	out.WriteByte('\n')

	if err := writeFileAtomic(s.path, out.Bytes(), 0644); err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{
		"path":  s.path,
		"pages": reg.Len(),
	}).Debug("Registry saved")
	return nil
}
