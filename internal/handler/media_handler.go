package handler

import (
	"net/http"
)

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	media, err := h.MediaService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Upload image successfully", media, http.StatusOK)
}

func (h *Handlers) UploadVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		WriteError(w, "Файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	media, err := h.MediaService.UploadVideo(r.Context(), header.Filename, file)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteJSON(w, "Upload video successfully", media, http.StatusOK)
}
