package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/media"
	"fitoapteka.kz/app/internal/shared/apperr"
)

// maxUploadBody leaves room for multipart framing around a MaxBytes file.
const maxUploadBody = media.MaxBytes + 1<<20

type UploadHandler struct {
	media *media.Service
}

func NewUploadHandler(svc *media.Service) *UploadHandler { return &UploadHandler{media: svc} }

// ProductImage: POST /api/upload/product-image (multipart field "file")
//
// The form is streamed so the part's Content-Type is checked before its
// size.
func (h *UploadHandler) ProductImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	file, err := filePart(c.Request, "file")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	res, err := h.media.Upload(c.Request.Context(), file)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// filePart returns the first file part named field, or nil when the request
// is not multipart or carries no such part.
func filePart(r *http.Request, field string) (*media.File, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, nil
	}
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				return nil, apperr.InvalidErr("file_too_large", map[string]string{"maxMB": strconv.Itoa(media.MaxMB)})
			}
			return nil, apperr.InvalidErr("malformed_upload", nil)
		}
		if p.FormName() == field && p.FileName() != "" {
			return &media.File{
				Filename:    p.FileName(),
				ContentType: p.Header.Get("Content-Type"),
				Body:        p,
			}, nil
		}
	}
}
