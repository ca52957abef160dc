package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portalcms/internal/domain/entity"
)

type fakeBannerRepo struct {
	items      []entity.Banner
	facetCalls []string
}

func (f *fakeBannerRepo) List(ctx context.Context) ([]entity.Banner, error) {
	return f.items, nil
}

func (f *fakeBannerRepo) Create(ctx context.Context, b entity.Banner) (*entity.Banner, string, error) {
	b.ID = "b-new"
	return &b, "Banner created successfully.", nil
}

func (f *fakeBannerRepo) Update(ctx context.Context, id string, b entity.Banner) (*entity.Banner, string, error) {
	b.ID = id
	return &b, "Banner updated successfully.", nil
}

func (f *fakeBannerRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) (string, error) {
	f.facetCalls = append(f.facetCalls, fmt.Sprintf("status:%s=%s", id, status))
	return "Banner status updated successfully.", nil
}

func (f *fakeBannerRepo) UpdateTheme(ctx context.Context, id string, theme string) (string, error) {
	f.facetCalls = append(f.facetCalls, fmt.Sprintf("theme:%s=%s", id, theme))
	return "Banner theme updated successfully.", nil
}

func (f *fakeBannerRepo) UpdateDevice(ctx context.Context, id string, device string) (string, error) {
	f.facetCalls = append(f.facetCalls, fmt.Sprintf("device:%s=%s", id, device))
	return "Banner device updated successfully.", nil
}

func (f *fakeBannerRepo) Delete(ctx context.Context, id string) (string, error) {
	return "Banner deleted successfully.", nil
}

func (f *fakeBannerRepo) DeleteMany(ctx context.Context, ids []string) (string, error) {
	return "Banners deleted successfully.", nil
}

func bannerFixture() []entity.Banner {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.Banner{
		{ID: "b-0", Status: entity.StatusActive, Device: entity.DeviceDesktop, Theme: entity.ThemeDark, CreatedAt: base},
		{ID: "b-1", Status: entity.StatusActive, Device: entity.DeviceMobile, Theme: entity.ThemeLight, CreatedAt: base.Add(time.Hour)},
		{ID: "b-2", Status: entity.StatusHide, Device: entity.DeviceDesktop, Theme: entity.ThemeLight, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func newBannerStore(t *testing.T, repo *fakeBannerRepo) *BannerStore {
	t.Helper()
	store := NewBannerStore(repo, nil)
	require.True(t, store.FetchAll(context.Background()).Success)
	return store
}

func TestBannerStoreSortsNewestFirst(t *testing.T) {
	store := newBannerStore(t, &fakeBannerRepo{items: bannerFixture()})

	banners := store.Banners()
	assert.Equal(t, "b-2", banners[0].ID)
	assert.Equal(t, "b-1", banners[1].ID)
	assert.Equal(t, "b-0", banners[2].ID)
}

func TestBannerStoreFacetMutatorsPatchOneField(t *testing.T) {
	repo := &fakeBannerRepo{items: bannerFixture()}
	store := newBannerStore(t, repo)

	require.True(t, store.UpdateTheme(context.Background(), "b-0", entity.ThemeLight).Success)
	require.True(t, store.UpdateDevice(context.Background(), "b-0", entity.DeviceMobile).Success)
	require.True(t, store.UpdateStatus(context.Background(), "b-0", entity.StatusHide).Success)

	assert.Equal(t, []string{
		"theme:b-0=light",
		"device:b-0=mobile",
		"status:b-0=hide",
	}, repo.facetCalls)

	for _, b := range store.Banners() {
		if b.ID == "b-0" {
			assert.Equal(t, entity.ThemeLight, b.Theme)
			assert.Equal(t, entity.DeviceMobile, b.Device)
			assert.Equal(t, entity.StatusHide, b.Status)
			assert.Equal(t, "b-0", b.ID)
		}
	}
}

func TestBannerStoreDeviceAndThemeFilters(t *testing.T) {
	store := newBannerStore(t, &fakeBannerRepo{items: bannerFixture()})

	store.SetDeviceFilter(entity.DeviceDesktop)
	assert.Equal(t, 2, store.View().Total)

	store.SetThemeFilter(entity.ThemeLight)
	view := store.View()
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, "b-2", view.Rows[0].ID)

	store.SetDeviceFilter("")
	store.SetThemeFilter("")
	assert.Equal(t, 3, store.View().Total)
}

func TestBannerStoreActiveForDevice(t *testing.T) {
	store := newBannerStore(t, &fakeBannerRepo{items: bannerFixture()})

	active := store.ActiveForDevice(entity.DeviceDesktop)
	require.Len(t, active, 1)
	assert.Equal(t, "b-0", active[0].ID)

	assert.Len(t, store.ActiveForDevice(""), 2)
}

func TestDashboardSummary(t *testing.T) {
	announcements := NewAnnouncementStore(&fakeAnnouncementRepo{items: []entity.Announcement{
		{ID: "a-0", Desc: "Welcome bonus doubled", Status: entity.StatusActive},
		{ID: "a-1", Desc: "Maintenance tonight", Status: entity.StatusActive},
		{ID: "a-2", Desc: "Old promo", Status: entity.StatusExpired},
	}}, nil)
	banners := NewBannerStore(&fakeBannerRepo{items: bannerFixture()}, nil)
	notifications := NewNotificationStore(&fakeNotificationRepo{}, nil)
	providers := NewProviderStore(&fakeProviderRepo{items: providerFixture()}, nil)

	uc := NewDashboardUseCase(announcements, banners, notifications, providers)
	summary := uc.Summary(context.Background(), entity.DeviceMobile)

	assert.Equal(t, 3, summary.Announcements.Total)
	assert.Equal(t, 2, summary.Announcements.Active)
	assert.Equal(t, 1, summary.Announcements.Expired)
	assert.Equal(t, 5, summary.Providers.Total)
	assert.Equal(t, "Welcome bonus doubled   |   Maintenance tonight", summary.Marquee)

	require.Len(t, summary.ActiveBanners, 1)
	assert.Equal(t, entity.DeviceMobile, summary.ActiveBanners[0].Device)
}
