// Package storage holds the image store the food handlers write uploaded
// pictures through.
package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"restaurant-booking-api/validation"

	"github.com/google/uuid"
)

// ErrBadExtension is returned when an upload has a file extension outside
// the jpg/jpeg/png whitelist.
var ErrBadExtension = errors.New("file extension not allowed")

// ImageStore abstracts where uploaded food images end up.
type ImageStore interface {
	// Save stores the uploaded file and returns the name it was stored
	// under.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes a previously stored file.
	Remove(name string) error
}

// DiskStore keeps images as files in a local directory. Stored names are
// random so concurrent uploads of same-named files cannot collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	if !validation.AllowedImage(file.Filename) {
		return "", ErrBadExtension
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

func (s *DiskStore) Remove(name string) error {
	// Base strips any path components a caller might pass through.
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
