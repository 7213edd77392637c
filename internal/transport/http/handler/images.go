package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Evanshango/chatty-backend/internal/application/avatar"
	"github.com/Evanshango/chatty-backend/internal/transport/http/middleware"
)

// ImageHandler handles avatar uploads.
type ImageHandler struct {
	svc      avatar.Service
	maxBytes int64
}

func NewImageHandler(svc avatar.Service, maxBytes int64) *ImageHandler {
	return &ImageHandler{svc: svc, maxBytes: maxBytes}
}

// Upload streams the first file part of a multipart body to the avatar
// service without buffering the whole form in memory.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "Unauthorized")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, msgNoFile)
			return
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusBadRequest, msgTooLarge)
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		if part.FileName() == "" {
			part.Close()
			continue
		}

		contentType := part.Header.Get("Content-Type")
		if !avatar.AllowedType(contentType) {
			part.Close()
			writeError(w, http.StatusBadRequest, msgWrongFileType)
			return
		}
		_, err = h.svc.Upload(r.Context(), avatar.UploadInput{
			Reader:      part,
			Filename:    part.FileName(),
			ContentType: contentType,
			Handle:      claims.Handle,
		})
		part.Close()
		if err != nil {
			httpError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Image uploaded successfully"})
		return
	}
}
