package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"portalcms/internal/adapter/api"
	"portalcms/internal/adapter/api/handler"
	"portalcms/internal/adapter/api/router"
	"portalcms/internal/adapter/upstream"
	"portalcms/internal/infrastructure/catalog"
	"portalcms/internal/infrastructure/events"
	"portalcms/internal/infrastructure/imagehost"
	"portalcms/internal/infrastructure/ratelimit"
	"portalcms/internal/usecase"
	"portalcms/pkg/config"
	"portalcms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config: %v", err)
		return
	}

	backend := upstream.NewClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	announcementRepo := upstream.NewAnnouncementRepository(backend)
	notificationRepo := upstream.NewNotificationRepository(backend)
	bannerRepo := upstream.NewBannerRepository(backend)
	providerRepo := upstream.NewProviderRepository(backend)
	gameRepo := upstream.NewGameRepository(backend)

	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.CatalogTenant)
	imageClient := imagehost.NewClient(cfg.ImageHostURL, cfg.ImageCloudName, cfg.ImageUploadPreset)

	hub := events.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Start(ctx)

	announcementStore := usecase.NewAnnouncementStore(announcementRepo, hub)
	notificationStore := usecase.NewNotificationStore(notificationRepo, hub)
	bannerStore := usecase.NewBannerStore(bannerRepo, hub)
	providerStore := usecase.NewProviderStore(providerRepo, hub)
	gameStore := usecase.NewGameStore(gameRepo, catalogClient, hub)
	dashboard := usecase.NewDashboardUseCase(announcementStore, bannerStore, notificationStore, providerStore)

	handler.Setup(
		cfg,
		announcementStore,
		notificationStore,
		bannerStore,
		providerStore,
		gameStore,
		dashboard,
		imageClient,
		hub,
	)

	writeLimiter := ratelimit.NewLimiter(10, 5)
	go writeLimiter.Janitor(ctx, 10*time.Minute, 30*time.Minute)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	router.Setup(e, cfg, writeLimiter)

	logger.Info("Starting admin gateway on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Error("Server stopped: %v", err)
	}
}
