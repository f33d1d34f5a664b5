package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"twitterclone/internal/config"
	"twitterclone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Изображение уходит в хранилище и остаётся локально", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &config.Config{UploadImageDir: dir}
		storageMock := new(MockStorage)

		storageMock.On("UploadMedia", mock.Anything,
			mock.MatchedBy(func(name string) bool { return strings.HasSuffix(name, ".png") }),
			"imagedata", int64(9)).
			Return("obj", "http://minio/tweets/obj.png", nil)

		svc := NewMediaService(storageMock, cfg)
		media, err := svc.UploadImage(ctx, "avatar.png", strings.NewReader("imagedata"), 9)

		require.NoError(t, err)
		assert.Equal(t, "http://minio/tweets/obj.png", media.URL)
		assert.Equal(t, models.MediaTypeImage, media.Type)

		// локальная копия доступна эндпоинту /static/image
		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.True(t, strings.HasSuffix(files[0].Name(), ".png"))

		content, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
		require.NoError(t, err)
		assert.Equal(t, "imagedata", string(content))

		storageMock.AssertExpectations(t)
	})

	t.Run("При ошибке хранилища локальная копия не остаётся", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &config.Config{UploadImageDir: dir}
		storageMock := new(MockStorage)

		storageMock.On("UploadMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", "", errors.New("соединение разорвано"))

		svc := NewMediaService(storageMock, cfg)
		_, err := svc.UploadImage(ctx, "avatar.png", strings.NewReader("imagedata"), 9)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка загрузки изображения")

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestMediaService_UploadVideo(t *testing.T) {
	t.Run("Видео сохраняется локально под уникальным именем", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &config.Config{UploadVideoDir: dir}

		svc := NewMediaService(new(MockStorage), cfg)
		media, err := svc.UploadVideo(context.Background(), "clip.mp4", strings.NewReader("videodata"))

		require.NoError(t, err)
		assert.Equal(t, models.MediaTypeVideo, media.Type)
		assert.True(t, strings.HasPrefix(media.URL, "/static/video-streaming/"))
		assert.True(t, strings.HasSuffix(media.URL, ".mp4"))

		name := strings.TrimPrefix(media.URL, "/static/video-streaming/")
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "videodata", string(content))
	})
}

//go test ./internal/service/... -v
