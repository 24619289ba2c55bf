package handlers

import (
	"net/http"

	"foodbank-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps file uploads at 10 MiB
const maxUploadBytes = 10 << 20

// FileHandler handles file uploads (donation photos, avatars) backed by S3
type FileHandler struct {
	storage *storage.S3Storage
}

// NewFileHandler creates a new file handler
func NewFileHandler(storage *storage.S3Storage) *FileHandler {
	return &FileHandler{storage: storage}
}

// UploadResponse represents the result of a file upload
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadFile handles POST /api/v1/files
// @Summary Upload a file
// @Description Uploads a file (multipart form field "file") to object storage and returns its key and public URL. An optional "prefix" form field groups files, e.g. "donations" or "avatars".
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param prefix formData string false "Storage prefix" default(uploads)
// @Success 201 {object} UploadResponse "Uploaded file location"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /files [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 10 MiB upload limit"})
		return
	}

	prefix := c.DefaultPostForm("prefix", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload", "details": err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, url, err := h.storage.Upload(c.Request.Context(), prefix, fileHeader.Filename, contentType, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{Key: key, URL: url})
}

// DeleteFile handles DELETE /api/v1/files/*key
// @Summary Delete a stored file
// @Tags files
// @Produce json
// @Param key path string true "Storage key"
// @Success 204 "Successfully deleted file"
// @Failure 400 {object} map[string]interface{} "Invalid key"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /files/{key} [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	key := c.Param("key")
	if key == "" || key == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storage key is required"})
		return
	}
	// wildcard params carry a leading slash
	key = key[1:]

	if err := h.storage.Delete(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
