package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"twitterclone/internal/config"
	"twitterclone/internal/models"
	"twitterclone/internal/storage"

	"github.com/google/uuid"
)

type MediaService interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Media, error)
	UploadVideo(ctx context.Context, fileName string, file io.Reader) (*models.Media, error)
}

type mediaService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewMediaService(storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{storage: storage, cfg: cfg}
}

// UploadImage - оригинал уходит в хранилище, локальная копия
// отдаётся эндпоинтом /static/image
func (s *mediaService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Media, error) {
	if err := os.MkdirAll(s.cfg.UploadImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка при создании каталога изображений: %w", err)
	}

	ext := filepath.Ext(fileName)
	name := uuid.New().String() + ext
	path := filepath.Join(s.cfg.UploadImageDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании файла изображения: %w", err)
	}
	defer dst.Close()

	_, mediaURL, err := s.storage.UploadMedia(ctx, name, io.TeeReader(file, dst), size)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	return &models.Media{URL: mediaURL, Type: models.MediaTypeImage}, nil
}

// UploadVideo - видео хранится локально, отдаётся range-эндпоинтом
func (s *mediaService) UploadVideo(ctx context.Context, fileName string, file io.Reader) (*models.Media, error) {
	if err := os.MkdirAll(s.cfg.UploadVideoDir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка при создании каталога видео: %w", err)
	}

	ext := filepath.Ext(fileName)
	name := uuid.New().String() + ext
	path := filepath.Join(s.cfg.UploadVideoDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании файла видео: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("ошибка при записи видео: %w", err)
	}

	return &models.Media{URL: "/static/video-streaming/" + name, Type: models.MediaTypeVideo}, nil
}
