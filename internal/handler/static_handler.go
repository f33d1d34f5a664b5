package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// videoChunkSize - размер сегмента при потоковой отдаче видео
const videoChunkSize = 1024 * 1024

func (h *Handlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(mux.Vars(r)["name"])
	path := filepath.Join(h.Cfg.UploadImageDir, name)

	if _, err := os.Stat(path); err != nil {
		WriteError(w, "Not Found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, path)
}

// ServeVideoStreaming - отдача видео сегментами по Range-запросам
func (h *Handlers) ServeVideoStreaming(w http.ResponseWriter, r *http.Request) {
	rangeHeader := r.Header.Get("Range")
	if rangeHeader == "" {
		WriteError(w, "Range not specified", http.StatusBadRequest)
		return
	}

	name := filepath.Base(mux.Vars(r)["name"])
	path := filepath.Join(h.Cfg.UploadVideoDir, name)

	file, err := os.Open(path)
	if err != nil {
		WriteError(w, "Not Found", http.StatusNotFound)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	videoSize := info.Size()

	start := parseRangeStart(rangeHeader)
	if start >= videoSize {
		WriteError(w, "Недопустимый Range", http.StatusRequestedRangeNotSatisfiable)
		return
	}

	end := start + videoChunkSize
	if end > videoSize-1 {
		end = videoSize - 1
	}
	contentLength := end - start + 1

	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, videoSize))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Length", strconv.FormatInt(contentLength, 10))
	w.WriteHeader(http.StatusPartialContent)

	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return
	}
	io.CopyN(w, file, contentLength)
}

// parseRangeStart - начало диапазона из заголовка вида "bytes=0-"
func parseRangeStart(rangeHeader string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimSuffix(strings.TrimSpace(rangeHeader), "-"))

	start, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return start
}
