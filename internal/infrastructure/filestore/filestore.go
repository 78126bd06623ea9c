package filestore

import (
	"os"
	"path/filepath"

	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MaxThumbnailSize = 2000000
	MaxAvatarSize    = 500000
)

type FileStore interface {
	Save(data []byte, originalName string, maxSize int64) (filename string, err error)
	Remove(filename string) (err error)
}

type LocalFileStore struct {
	dir string
}

func CreateLocalFileStore(dir string) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &LocalFileStore{dir: dir}, nil
}

func (f *LocalFileStore) Save(data []byte, originalName string, maxSize int64) (string, error) {
	if int64(len(data)) > maxSize {
		return "", errs.ErrFileTooLarge
	}

	filename := uuid.NewString() + filepath.Ext(originalName)

	err := os.WriteFile(filepath.Join(f.dir, filename), data, 0o644)
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", err
	}

	return filename, nil
}

func (f *LocalFileStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(f.dir, filename))
	if err != nil {
		log.Error().Err(err).Str("component", "Remove").Msg("")
		if os.IsNotExist(err) {
			return errs.ErrNotFound
		}
		return err
	}

	return nil
}
