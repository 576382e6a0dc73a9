package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"ecocollect/internal/infra"
)

// FileStore keeps one file per key under a state directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// snapshot behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create state directory", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, infra.WrapRepoErr("no snapshot for key "+key, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read snapshot "+key, err)
	}
	return blob, nil
}

func (s *FileStore) Save(_ context.Context, key string, blob []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return infra.WrapRepoErr("failed to write snapshot "+key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return infra.WrapRepoErr("failed to commit snapshot "+key, err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return infra.WrapRepoErr("failed to delete snapshot "+key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys come from our own constants, but sanitize anyway so a hostile
	// user id cannot escape the state directory.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
