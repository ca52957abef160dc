package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"portalcms/internal/domain/entity"
)

// marqueeSeparator joins active announcement texts into the ticker line the
// portal scrolls across the top of the page.
const marqueeSeparator = "   |   "

// DashboardUseCase assembles the landing-page summary from the four entity
// stores. The refreshes run concurrently and independently; a store that
// fails to load simply contributes its last known state.
type DashboardUseCase struct {
	announcements *AnnouncementStore
	banners       *BannerStore
	notifications *NotificationStore
	providers     *ProviderStore
}

func NewDashboardUseCase(
	announcements *AnnouncementStore,
	banners *BannerStore,
	notifications *NotificationStore,
	providers *ProviderStore,
) *DashboardUseCase {
	return &DashboardUseCase{
		announcements: announcements,
		banners:       banners,
		notifications: notifications,
		providers:     providers,
	}
}

type DashboardSummary struct {
	Announcements StatusCounts    `json:"announcements"`
	Banners       StatusCounts    `json:"banners"`
	Notifications StatusCounts    `json:"notifications"`
	Providers     ProviderCounts  `json:"providers"`
	ActiveBanners []entity.Banner `json:"activeBanners"`
	Marquee       string          `json:"marquee"`
}

// Summary refreshes every store and builds the aggregate view. The device
// narrows the active-banner strip; empty means both devices.
func (uc *DashboardUseCase) Summary(ctx context.Context, device string) DashboardSummary {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		uc.announcements.FetchAll(ctx)
		return nil
	})
	g.Go(func() error {
		uc.banners.FetchAll(ctx)
		return nil
	})
	g.Go(func() error {
		uc.notifications.FetchAll(ctx)
		return nil
	})
	g.Go(func() error {
		uc.providers.FetchAll(ctx)
		return nil
	})
	g.Wait()

	return DashboardSummary{
		Announcements: uc.announcements.Counts(),
		Banners:       uc.banners.Counts(),
		Notifications: uc.notifications.Counts(),
		Providers:     uc.providers.Counts(),
		ActiveBanners: uc.banners.ActiveForDevice(device),
		Marquee:       uc.marquee(),
	}
}

func (uc *DashboardUseCase) marquee() string {
	now := uc.announcements.now()
	items := uc.announcements.Announcements()
	texts := make([]string, 0, len(items))
	for _, a := range items {
		if a.EffectiveStatus(now) == entity.EffectiveActive {
			texts = append(texts, a.Desc)
		}
	}
	return strings.Join(texts, marqueeSeparator)
}
