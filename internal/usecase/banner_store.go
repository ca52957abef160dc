package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
	"portalcms/pkg/listview"
	"portalcms/pkg/logger"
)

// BannerStore caches banners newest-first and exposes the device and theme
// facet filters alongside the shared status filter. The facet mutators patch
// exactly one field in the cache, mirroring the dedicated backend routes.
type BannerStore struct {
	repo   repository.BannerRepository
	events EventPublisher
	now    func() time.Time

	mu      sync.Mutex
	items   []entity.Banner
	loading bool
	list    *listview.Controller[entity.Banner]
}

func NewBannerStore(repo repository.BannerRepository, events EventPublisher) *BannerStore {
	s := &BannerStore{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
	s.list = listview.New(listview.Config[entity.Banner]{
		ID: func(b entity.Banner) string { return b.ID },
		Status: func(b entity.Banner, status string) bool {
			return string(b.EffectiveStatus(s.now())) == status
		},
		Facets: map[string]func(entity.Banner) string{
			"device": func(b entity.Banner) string { return b.Device },
			"theme":  func(b entity.Banner) string { return b.Theme },
		},
		Search: func(b entity.Banner, term string) bool {
			return containsFold(b.Alt, term) || containsFold(b.URL, term)
		},
	})
	return s
}

type BannerView struct {
	listview.View[entity.Banner]
	Counts    StatusCounts `json:"counts"`
	MinExpiry string       `json:"minExpiry"`
}

func (s *BannerStore) FetchAll(ctx context.Context) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch banners: %v", err)
		return failFeedback(err, "Failed to fetch banners.")
	}

	sortBannersNewestFirst(items)
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return okFeedback("")
}

func sortBannersNewestFirst(items []entity.Banner) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func (s *BannerStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BannerStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *BannerStore) Banners() []entity.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Banner(nil), s.items...)
}

func (s *BannerStore) Create(ctx context.Context, b entity.Banner) Feedback {
	created, msg, err := s.repo.Create(ctx, b)
	if err != nil {
		logger.Error("Failed to create banner: %v", err)
		return failFeedback(err, "Failed to create banner.")
	}

	if created != nil {
		s.mu.Lock()
		s.items = append([]entity.Banner{*created}, s.items...)
		s.mu.Unlock()
		publish(s.events, "banner", "created", created.ID)
	}
	return okFeedback(msg)
}

func (s *BannerStore) Update(ctx context.Context, id string, b entity.Banner) Feedback {
	updated, msg, err := s.repo.Update(ctx, id, b)
	if err != nil {
		logger.Error("Failed to update banner %s: %v", id, err)
		return failFeedback(err, "Failed to update banner.")
	}

	if updated != nil {
		s.replace(*updated)
	}
	publish(s.events, "banner", "updated", id)
	return okFeedback(msg)
}

// UpdateStatus, UpdateTheme and UpdateDevice patch a single field both
// upstream and in the cache. Nothing else on the row moves.

func (s *BannerStore) UpdateStatus(ctx context.Context, id string, status entity.Status) Feedback {
	msg, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error("Failed to update banner status %s: %v", id, err)
		return failFeedback(err, "Failed to update banner status.")
	}

	s.patch(id, func(b *entity.Banner) { b.Status = status })
	publish(s.events, "banner", "updated", id)
	return okFeedback(msg)
}

func (s *BannerStore) UpdateTheme(ctx context.Context, id string, theme string) Feedback {
	msg, err := s.repo.UpdateTheme(ctx, id, theme)
	if err != nil {
		logger.Error("Failed to update banner theme %s: %v", id, err)
		return failFeedback(err, "Failed to update banner theme.")
	}

	s.patch(id, func(b *entity.Banner) { b.Theme = theme })
	publish(s.events, "banner", "updated", id)
	return okFeedback(msg)
}

func (s *BannerStore) UpdateDevice(ctx context.Context, id string, device string) Feedback {
	msg, err := s.repo.UpdateDevice(ctx, id, device)
	if err != nil {
		logger.Error("Failed to update banner device %s: %v", id, err)
		return failFeedback(err, "Failed to update banner device.")
	}

	s.patch(id, func(b *entity.Banner) { b.Device = device })
	publish(s.events, "banner", "updated", id)
	return okFeedback(msg)
}

func (s *BannerStore) Delete(ctx context.Context, id string) Feedback {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete banner %s: %v", id, err)
		return failFeedback(err, "Failed to delete banner.")
	}

	s.removeByID([]string{id})
	publish(s.events, "banner", "deleted", id)
	return okFeedback(msg)
}

func (s *BannerStore) DeleteSelected(ctx context.Context) Feedback {
	s.mu.Lock()
	ids := s.list.SelectedIDs()
	s.mu.Unlock()
	if len(ids) == 0 {
		return Feedback{Success: false, Message: "No banners selected."}
	}

	msg, err := s.repo.DeleteMany(ctx, ids)

	s.mu.Lock()
	s.list.ClearSelection()
	s.mu.Unlock()

	if err != nil {
		logger.Error("Failed to delete banners: %v", err)
		return failFeedback(err, "Failed to delete selected banners.")
	}

	s.removeByID(ids)
	publish(s.events, "banner", "deleted", "")
	return okFeedback(msg)
}

func (s *BannerStore) replace(b entity.Banner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == b.ID {
			s.items[i] = b
			return
		}
	}
}

func (s *BannerStore) patch(id string, apply func(*entity.Banner)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			apply(&s.items[i])
			return
		}
	}
}

func (s *BannerStore) removeByID(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if _, ok := drop[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *BannerStore) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetStatusFilter(status)
}

func (s *BannerStore) SetDeviceFilter(device string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetFacet("device", device)
}

func (s *BannerStore) SetThemeFilter(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetFacet("theme", theme)
}

func (s *BannerStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetSearch(term)
}

func (s *BannerStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetPageSize(size)
}

func (s *BannerStore) ChangePage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.PageChange(page, s.items)
}

func (s *BannerStore) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelect(id)
}

func (s *BannerStore) ToggleSelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelectAll(s.items)
}

func (s *BannerStore) View() BannerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BannerView{
		View:      s.list.View(s.items),
		Counts:    s.counts(),
		MinExpiry: entity.MinExpiryDate(s.now()),
	}
}

// ActiveForDevice returns the banners the portal would actually show for a
// device right now.
func (s *BannerStore) ActiveForDevice(device string) []entity.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	out := make([]entity.Banner, 0, len(s.items))
	for _, b := range s.items {
		if b.EffectiveStatus(now) == entity.EffectiveActive && (device == "" || b.Device == device) {
			out = append(out, b)
		}
	}
	return out
}

func (s *BannerStore) Counts() StatusCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts()
}

func (s *BannerStore) counts() StatusCounts {
	now := s.now()
	c := StatusCounts{Total: len(s.items)}
	for _, b := range s.items {
		switch b.EffectiveStatus(now) {
		case entity.EffectiveActive:
			c.Active++
		case entity.EffectiveExpired:
			c.Expired++
		case entity.EffectiveHidden:
			c.Hidden++
		}
	}
	return c
}

func (s *BannerStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.list.SetStatusFilter(listview.FilterAll)
	s.list.SetFacet("device", listview.FilterAll)
	s.list.SetFacet("theme", listview.FilterAll)
	s.list.SetSearch("")
	s.list.ClearSelection()
}
