package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/modules/sitemap"
	"fitoapteka.kz/app/internal/shared/apperr"
)

type SitemapHandler struct {
	builder *sitemap.Builder
}

func NewSitemapHandler(b *sitemap.Builder) *SitemapHandler { return &SitemapHandler{builder: b} }

func (h *SitemapHandler) Sitemap(c *gin.Context) {
	set, err := h.builder.Build(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	var buf bytes.Buffer
	if err := sitemap.Write(&buf, set); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}
