package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"offcampus/internal/infra"
	"offcampus/pkg/utils"
)

// maxUploadBytes caps a single file upload (resumes, banner images).
const maxUploadBytes = 10 << 20

var allowedUploadFolders = map[string]bool{
	"resumes": true,
	"banners": true,
	"kits":    true,
}

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type UploadServiceInterface interface {
	Upload(ctx context.Context, folder, filename string, body []byte, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type uploadService struct {
	storage infra.ObjectStorage
}

func NewUploadService(storage infra.ObjectStorage) UploadServiceInterface {
	return &uploadService{storage: storage}
}

// Upload stores a file under a random key so clients cannot guess or clobber
// each other's objects. The original extension is kept for content sniffing.
func (u *uploadService) Upload(ctx context.Context, folder, filename string, body []byte, contentType string) (*UploadResult, error) {
	if !allowedUploadFolders[folder] {
		return nil, fmt.Errorf("%w: unknown upload folder %q", utils.ErrValidation, folder)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty file", utils.ErrValidation)
	}
	if len(body) > maxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", utils.ErrValidation, maxUploadBytes)
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, utils.GenerateID(16), ext)

	url, err := u.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{Key: key, URL: url}, nil
}

func (u *uploadService) Delete(ctx context.Context, key string) error {
	folder, _, found := strings.Cut(key, "/")
	if !found || !allowedUploadFolders[folder] {
		return fmt.Errorf("%w: invalid object key", utils.ErrValidation)
	}
	return u.storage.Delete(ctx, key)
}
