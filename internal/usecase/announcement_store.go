package usecase

import (
	"context"
	"sync"
	"time"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
	"portalcms/pkg/listview"
	"portalcms/pkg/logger"
)

// AnnouncementStore owns the cached announcement collection and the list
// view state over it. All reads and mutations go through the store so the
// cache, filters and selection stay consistent.
type AnnouncementStore struct {
	repo   repository.AnnouncementRepository
	events EventPublisher
	now    func() time.Time

	mu      sync.Mutex
	items   []entity.Announcement
	loading bool
	list    *listview.Controller[entity.Announcement]
}

func NewAnnouncementStore(repo repository.AnnouncementRepository, events EventPublisher) *AnnouncementStore {
	s := &AnnouncementStore{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
	s.list = listview.New(listview.Config[entity.Announcement]{
		ID: func(a entity.Announcement) string { return a.ID },
		Status: func(a entity.Announcement, status string) bool {
			return string(a.EffectiveStatus(s.now())) == status
		},
		Search: func(a entity.Announcement, term string) bool {
			return containsFold(a.Desc, term)
		},
	})
	return s
}

// AnnouncementView is the page-ready projection handlers serialize as-is.
// MinExpiry is the earliest date the create form may offer.
type AnnouncementView struct {
	listview.View[entity.Announcement]
	Counts    StatusCounts `json:"counts"`
	MinExpiry string       `json:"minExpiry"`
}

// FetchAll replaces the cache with the backend collection. The loading flag
// is visible to readers for the duration of the call and cleared on every
// path.
func (s *AnnouncementStore) FetchAll(ctx context.Context) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch announcements: %v", err)
		return failFeedback(err, "Failed to fetch announcements.")
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return okFeedback("")
}

func (s *AnnouncementStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AnnouncementStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Announcements returns a copy of the cached collection.
func (s *AnnouncementStore) Announcements() []entity.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Announcement(nil), s.items...)
}

func (s *AnnouncementStore) Create(ctx context.Context, a entity.Announcement) Feedback {
	created, msg, err := s.repo.Create(ctx, a)
	if err != nil {
		logger.Error("Failed to create announcement: %v", err)
		return failFeedback(err, "Failed to create announcement.")
	}

	if created != nil {
		s.mu.Lock()
		s.items = append([]entity.Announcement{*created}, s.items...)
		s.mu.Unlock()
		publish(s.events, "announcement", "created", created.ID)
	}
	return okFeedback(msg)
}

func (s *AnnouncementStore) Update(ctx context.Context, id string, a entity.Announcement) Feedback {
	updated, msg, err := s.repo.Update(ctx, id, a)
	if err != nil {
		logger.Error("Failed to update announcement %s: %v", id, err)
		return failFeedback(err, "Failed to update announcement.")
	}

	if updated != nil {
		s.replace(*updated)
	}
	publish(s.events, "announcement", "updated", id)
	return okFeedback(msg)
}

// UpdateStatus patches only the status field in the cache when the backend
// does not echo the full entity, so unsaved sibling fields are never
// clobbered.
func (s *AnnouncementStore) UpdateStatus(ctx context.Context, id string, status entity.Status) Feedback {
	updated, msg, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error("Failed to update announcement status %s: %v", id, err)
		return failFeedback(err, "Failed to update announcement status.")
	}

	if updated != nil {
		s.replace(*updated)
	} else {
		s.mu.Lock()
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Status = status
				break
			}
		}
		s.mu.Unlock()
	}
	publish(s.events, "announcement", "updated", id)
	return okFeedback(msg)
}

func (s *AnnouncementStore) Delete(ctx context.Context, id string) Feedback {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete announcement %s: %v", id, err)
		return failFeedback(err, "Failed to delete announcement.")
	}

	s.removeByID([]string{id})
	publish(s.events, "announcement", "deleted", id)
	return okFeedback(msg)
}

// DeleteSelected bulk-deletes the current selection. The selection is
// cleared whenever the delete executed, whether or not the backend accepted
// it, so a partial failure never leaves stale checkmarks behind.
func (s *AnnouncementStore) DeleteSelected(ctx context.Context) Feedback {
	s.mu.Lock()
	ids := s.list.SelectedIDs()
	s.mu.Unlock()
	if len(ids) == 0 {
		return Feedback{Success: false, Message: "No announcements selected."}
	}

	msg, err := s.repo.DeleteMany(ctx, ids)

	s.mu.Lock()
	s.list.ClearSelection()
	s.mu.Unlock()

	if err != nil {
		logger.Error("Failed to delete announcements: %v", err)
		return failFeedback(err, "Failed to delete selected announcements.")
	}

	s.removeByID(ids)
	publish(s.events, "announcement", "deleted", "")
	return okFeedback(msg)
}

func (s *AnnouncementStore) replace(a entity.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == a.ID {
			s.items[i] = a
			return
		}
	}
}

func (s *AnnouncementStore) removeByID(ids []string) {
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

func (s *AnnouncementStore) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetStatusFilter(status)
}

func (s *AnnouncementStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetSearch(term)
}

func (s *AnnouncementStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetPageSize(size)
}

func (s *AnnouncementStore) ChangePage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.PageChange(page, s.items)
}

func (s *AnnouncementStore) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelect(id)
}

func (s *AnnouncementStore) ToggleSelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelectAll(s.items)
}

func (s *AnnouncementStore) View() AnnouncementView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AnnouncementView{
		View:      s.list.View(s.items),
		Counts:    s.counts(),
		MinExpiry: entity.MinExpiryDate(s.now()),
	}
}

func (s *AnnouncementStore) Counts() StatusCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts()
}

func (s *AnnouncementStore) counts() StatusCounts {
	now := s.now()
	c := StatusCounts{Total: len(s.items)}
	for _, a := range s.items {
		switch a.EffectiveStatus(now) {
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

// Reset drops the cache and all view state, used on logout.
func (s *AnnouncementStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.list.SetStatusFilter(listview.FilterAll)
	s.list.SetSearch("")
	s.list.ClearSelection()
}
