package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"inspecta-backend/middleware"
	"inspecta-backend/models"
	"inspecta-backend/repository"
	"inspecta-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageSize caps question-image uploads at 5MB.
const maxImageSize = 5 * 1024 * 1024

// ImageHandler handles question-image upload and retrieval
type ImageHandler struct {
	imageRepo        *repository.ImageRepository
	storage          storage.Storage
	allowedMimeTypes map[string]bool
}

// NewImageHandler creates a new image handler
func NewImageHandler(imageRepo *repository.ImageRepository, store storage.Storage) *ImageHandler {
	return &ImageHandler{
		imageRepo: imageRepo,
		storage:   store,
		allowedMimeTypes: map[string]bool{
			"image/png":  true,
			"image/jpeg": true,
			"image/webp": true,
		},
	}
}

// Upload handles POST /images/upload. The returned url is what report
// questions carry as imageUrl.
func (h *ImageHandler) Upload(c *gin.Context) {
	userID := middleware.UserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortError(c, models.NewValidationError("Arquivo de imagem é obrigatório"))
		return
	}

	if fileHeader.Size > maxImageSize {
		abortError(c, models.NewValidationError(fmt.Sprintf("Imagem excede o tamanho máximo de %d bytes", maxImageSize)))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferImageMime(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] {
		abortError(c, models.NewValidationError("Tipo de imagem não permitido. Permitidos: PNG, JPEG, WEBP"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortError(c, err)
		return
	}
	defer file.Close()

	imageID := uuid.New()
	storagePath, err := h.storage.Upload(c.Request.Context(), imageID, fileHeader.Filename, file)
	if err != nil {
		abortError(c, err)
		return
	}

	image := &models.Image{
		ID:          imageID,
		UserID:      userID,
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}
	if err := h.imageRepo.Create(c.Request.Context(), image); err != nil {
		// Orphaned blob cleanup; the record is what matters.
		h.storage.Delete(c.Request.Context(), storagePath)
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         image.ID,
		"url":        fmt.Sprintf("/images/%s", image.ID),
		"filename":   image.Filename,
		"mime_type":  image.MimeType,
		"size":       image.Size,
		"created_at": image.CreatedAt,
	})
}

// Get handles GET /images/:id, streaming the stored image
func (h *ImageHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, models.ErrNotFound)
		return
	}

	image, err := h.imageRepo.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		abortError(c, err)
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), image.StoragePath)
	if err != nil {
		abortError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", image.Filename))
	c.DataFromReader(http.StatusOK, image.Size, image.MimeType, reader, nil)
}

func inferImageMime(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
