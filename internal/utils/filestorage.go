package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ObjectStorage abstracts where media (class covers, trainer avatars) lives.
// Implemented by FileStorage for local disk and R2Storage for Cloudflare R2.
type ObjectStorage interface {
	SaveFile(subDir, originalFilename string, reader io.Reader) (string, error)
	DeleteFile(objectKey string) error
}

// FileStorage keeps uploads on local disk under BaseDir.
type FileStorage struct {
	BaseDir string
}

func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{BaseDir: baseDir}
}

// SaveFile writes the contents of reader to <BaseDir>/<subDir>/<uniqueFilename>
// and returns the key (relative path) to store in the DB.
func (fs *FileStorage) SaveFile(subDir, originalFilename string, reader io.Reader) (string, error) {
	dir := filepath.Join(fs.BaseDir, subDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	ext := filepath.Ext(originalFilename)
	uniqueName := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullPath := filepath.Join(dir, uniqueName)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return filepath.ToSlash(filepath.Join(subDir, uniqueName)), nil
}

// DeleteFile removes the file for key. Safe to call if the file is gone.
func (fs *FileStorage) DeleteFile(objectKey string) error {
	fullPath := filepath.Join(fs.BaseDir, filepath.FromSlash(objectKey))
	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}
