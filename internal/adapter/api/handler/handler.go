package handler

import (
	"portalcms/internal/domain/service"
	"portalcms/internal/infrastructure/events"
	"portalcms/internal/usecase"
	"portalcms/pkg/config"
)

var (
	authHandler         *AuthHandler
	announcementHandler *AnnouncementHandler
	notificationHandler *NotificationHandler
	bannerHandler       *BannerHandler
	providerHandler     *ProviderHandler
	gameHandler         *GameHandler
	dashboardHandler    *DashboardHandler
	uploadHandler       *UploadHandler
	eventsHandler       *EventsHandler
	settingsHandler     *SettingsHandler
)

// Setup wires every handler once at startup.
func Setup(
	cfg *config.Config,
	announcements *usecase.AnnouncementStore,
	notifications *usecase.NotificationStore,
	banners *usecase.BannerStore,
	providers *usecase.ProviderStore,
	games *usecase.GameStore,
	dashboard *usecase.DashboardUseCase,
	uploads service.ImageUploadService,
	hub *events.Hub,
) {
	authHandler = NewAuthHandler(cfg)
	announcementHandler = NewAnnouncementHandler(announcements)
	notificationHandler = NewNotificationHandler(notifications)
	bannerHandler = NewBannerHandler(banners)
	providerHandler = NewProviderHandler(providers)
	gameHandler = NewGameHandler(games)
	dashboardHandler = NewDashboardHandler(dashboard)
	uploadHandler = NewUploadHandler(uploads)
	eventsHandler = NewEventsHandler(hub)
	settingsHandler = NewSettingsHandler()
}

func GetAuthHandler() *AuthHandler                 { return authHandler }
func GetAnnouncementHandler() *AnnouncementHandler { return announcementHandler }
func GetNotificationHandler() *NotificationHandler { return notificationHandler }
func GetBannerHandler() *BannerHandler             { return bannerHandler }
func GetProviderHandler() *ProviderHandler         { return providerHandler }
func GetGameHandler() *GameHandler                 { return gameHandler }
func GetDashboardHandler() *DashboardHandler       { return dashboardHandler }
func GetUploadHandler() *UploadHandler             { return uploadHandler }
func GetEventsHandler() *EventsHandler             { return eventsHandler }
func GetSettingsHandler() *SettingsHandler         { return settingsHandler }
