package handler

import (
	"errors"
	"io"
	"net/http"

	"kakao-gateway/internal/services"
	"kakao-gateway/internal/transport/httpdto"
	gateway_errors "kakao-gateway/pkg/errors"
	"kakao-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
	logger  *logger.Logger
}

func NewUploadHandler(service *services.UploadService, l *logger.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: l}
}

// Ping answers the liveness check on GET /upload.
func (h *UploadHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "Upload endpoint is working")
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Image file is required"))
		return
	}

	// Reject before reading the payload into memory.
	contentType := fileHeader.Header.Get("Content-Type")
	if err := services.ValidateImage(fileHeader.Filename, contentType, fileHeader.Size); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(validationMessage(err)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Failed to upload image"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Failed to upload image"))
		return
	}

	imageURL, err := h.service.Upload(c.Request.Context(), services.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, gateway_errors.ErrTooLarge) || errors.Is(err, gateway_errors.ErrUnsupportedMediaType) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(validationMessage(err)))
			return
		}
		if h.logger != nil {
			h.logger.Errorf("s3 upload failed: %s", err.Error())
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Failed to upload image"))
		return
	}

	c.JSON(http.StatusOK, httpdto.UploadResponse{ImageURL: imageURL})
}

func validationMessage(err error) string {
	if errors.Is(err, gateway_errors.ErrTooLarge) {
		return "File is too large (max 5MB)"
	}
	return "Only images are allowed"
}
