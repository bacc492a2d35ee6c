package http

import (
	"log/slog"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/handlers"
	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/modules/admin"
)

// Deps are the handlers and shared services the router wires together.
type Deps struct {
	Logger    *slog.Logger
	PublicDir string

	Shop    *handlers.ShopHandler
	Layout  *handlers.LayoutHandler
	Ask     *handlers.AskHandler
	Upload  *handlers.UploadHandler
	Sitemap *handlers.SitemapHandler
	Admin   *handlers.AdminAuthHandler

	Tokens     *admin.Tokens
	AskLimiter middleware.Limiter
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 16 << 20

	// ErrorHandler wraps Recovery so recovered panics are rendered.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Auth(d.Tokens),
	)

	r.GET("/healthz", handlers.Healthz)
	r.GET("/sitemap.xml", d.Sitemap.Sitemap)
	r.Static("/uploads", filepath.Join(d.PublicDir, "uploads"))

	api := r.Group("/api")
	{
		api.GET("/shop", d.Shop.List)
		api.GET("/shop/:id", d.Shop.Detail)
		api.GET("/home", d.Shop.Home)
		api.GET("/layout", d.Layout.Layout)

		api.POST("/ask", middleware.RateLimit(d.AskLimiter, "ask"), d.Ask.Ask)

		api.POST("/admin/login", d.Admin.Login)
		api.POST("/upload/product-image", middleware.RequireAdmin(), d.Upload.ProductImage)
	}

	return r
}
