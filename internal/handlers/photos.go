// internal/handlers/photos.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdeo/plantrent-be/internal/adapters/storage"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// PhotoHandler handles visit photo uploads for completed exchanges
type PhotoHandler struct {
	service     ports.ExchangeService
	storage     storage.StorageClient
	logger      *slog.Logger
	maxFileSize int64
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(service ports.ExchangeService, storageClient storage.StorageClient, maxFileSize int64, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		service:     service,
		storage:     storageClient,
		logger:      logger.With(slog.String("handler", "photos")),
		maxFileSize: maxFileSize,
	}
}

// UploadPhoto handles POST /api/v1/exchanges/{id}/photos
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	exchangeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid exchange ID format")
		return
	}

	// Photos attach to real exchange requests only.
	if _, err := h.service.GetExchange(ctx, exchangeID); err != nil {
		if errors.Is(err, domain.ErrExchangeNotFound) {
			h.respondError(w, http.StatusNotFound, "Exchange request not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to look up exchange request",
			slog.String("exchange_request_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Photo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	key := storage.PhotoKey(exchangeID, header.Filename)
	metadata := map[string]string{
		"exchange-request-id": idStr,
	}
	if actor := r.FormValue("actor_id"); actor != "" {
		metadata["actor-id"] = actor
	}

	location, err := h.storage.UploadWithMetadata(ctx, key, file, contentType, metadata)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upload photo",
			slog.String("exchange_request_id", idStr),
			slog.String("key", key),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	h.logger.InfoContext(ctx, "visit photo uploaded",
		slog.String("exchange_request_id", idStr),
		slog.String("key", key))

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"exchange_request_id": idStr,
		"key":                 key,
		"location":            location,
	})
}

// ListPhotos handles GET /api/v1/exchanges/{id}/photos
func (h *PhotoHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	exchangeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid exchange ID format")
		return
	}

	keys, err := h.storage.List(ctx, storage.PhotoPrefix(exchangeID))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list photos",
			slog.String("exchange_request_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	photos := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		url, err := h.storage.GetPresignedURL(ctx, key, 15*time.Minute)
		if err != nil {
			h.logger.WarnContext(ctx, "failed to presign photo URL",
				slog.String("key", key),
				slog.String("error", err.Error()))
			continue
		}
		photos = append(photos, map[string]string{
			"key": key,
			"url": url,
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"exchange_request_id": idStr,
		"photos":              photos,
	})
}

// Helper methods

func (h *PhotoHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *PhotoHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
