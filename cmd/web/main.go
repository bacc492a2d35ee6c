package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fitoapteka.kz/app/internal/config"
	apphttp "fitoapteka.kz/app/internal/http"
	"fitoapteka.kz/app/internal/http/handlers"
	"fitoapteka.kz/app/internal/media"
	"fitoapteka.kz/app/internal/modules/admin"
	"fitoapteka.kz/app/internal/modules/catalog"
	"fitoapteka.kz/app/internal/modules/content"
	"fitoapteka.kz/app/internal/modules/qa"
	"fitoapteka.kz/app/internal/modules/sitemap"
	"fitoapteka.kz/app/internal/modules/theme"
	"fitoapteka.kz/app/internal/ratelimit"
	"fitoapteka.kz/app/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(store.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		return err
	}

	catalogRepo := catalog.NewRepo(db)
	contentRepo := content.NewRepo(db)
	themeRepo := theme.NewRepo(db)

	var completer qa.Completer
	if c := qa.NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model); c != nil {
		completer = c
	} else {
		logger.Warn("openai api key not set, /api/ask answers without a model")
	}

	sink, err := media.New(ctx, media.FactoryConfig{
		Driver:    cfg.Media.Driver,
		PublicDir: cfg.Site.PublicDir,
		Cloudinary: media.CloudinaryConfig{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Folder:    cfg.Cloudinary.Folder,
		},
		S3: media.S3Config{
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			Prefix:        cfg.S3.Prefix,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		},
	})
	if err != nil {
		return err
	}
	logger.Info("media storage", "driver", sink.Driver)

	tokens := admin.NewTokens(cfg.Auth.Secret)
	login := admin.NewLogin(cfg.Auth.AdminPasswordHash, tokens)
	if !cfg.AdminLoginEnabled() {
		logger.Warn("admin login disabled: auth secret or password hash not set")
	}

	catalogSvc := catalog.NewService(catalogRepo, logger)
	themeSvc := theme.NewService(themeRepo, cfg.Site.Key, cfg.Site.Brand, cfg.Analytics.UmamiWebsiteID, logger)
	qaSvc := qa.NewService(catalogRepo, contentRepo, completer, logger)
	builder := sitemap.NewBuilder(catalogRepo, contentRepo, cfg.Site.PublicBaseURL, logger)

	secureCookie := strings.HasPrefix(cfg.Site.PublicBaseURL, "https://")

	router := apphttp.NewRouter(apphttp.Deps{
		Logger:     logger,
		PublicDir:  cfg.Site.PublicDir,
		Shop:       handlers.NewShopHandler(catalogSvc, contentRepo, cfg.Site.Brand, cfg.Site.PublicBaseURL),
		Layout:     handlers.NewLayoutHandler(themeSvc),
		Ask:        handlers.NewAskHandler(qaSvc),
		Upload:     handlers.NewUploadHandler(media.NewService(sink.Sink)),
		Sitemap:    handlers.NewSitemapHandler(builder),
		Admin:      handlers.NewAdminAuthHandler(login, secureCookie),
		Tokens:     tokens,
		AskLimiter: ratelimit.New(cfg.RateLimit.AskLimit, cfg.RateLimit.AskWindow),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	})
	return g.Wait()
}
