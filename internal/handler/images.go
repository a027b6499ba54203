package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"restopanel/internal/apierror"
	"restopanel/internal/service"
)

// maxImageSize caps uploads at 10 MiB.
const maxImageSize = 10 << 20

type ImageHandler struct{ svc service.StorageService }

func NewImageHandler(svc service.StorageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Upload accepts a multipart "image" field and responds with the URL the
// restaurant record should reference.
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("multipart field \"image\" is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("image exceeds the 10 MiB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	url, err := h.svc.UploadImage(c.Request.Context(), file, fileHeader.Filename, fileHeader.Size, func(pct int) {
		log.Debug().Str("filename", fileHeader.Filename).Int("percent", pct).Msg("image upload progress")
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// Serve streams a stored image back to the client.
func (h *ImageHandler) Serve(c *gin.Context) {
	stream, name, err := h.svc.OpenImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer stream.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		log.Warn().Err(err).Str("image_id", c.Param("id")).Msg("image stream interrupted")
	}
}
