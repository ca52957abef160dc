package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
	"portalcms/pkg/listview"
	"portalcms/pkg/logger"
)

// NotificationStore mirrors the announcement store for player notifications,
// adding the message length guard enforced before any write reaches the
// backend.
type NotificationStore struct {
	repo   repository.NotificationRepository
	events EventPublisher
	now    func() time.Time

	mu      sync.Mutex
	items   []entity.Notification
	loading bool
	list    *listview.Controller[entity.Notification]
}

func NewNotificationStore(repo repository.NotificationRepository, events EventPublisher) *NotificationStore {
	s := &NotificationStore{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
	s.list = listview.New(listview.Config[entity.Notification]{
		ID: func(n entity.Notification) string { return n.ID },
		Status: func(n entity.Notification, status string) bool {
			return string(n.EffectiveStatus(s.now())) == status
		},
		Search: func(n entity.Notification, term string) bool {
			return containsFold(n.Title, term) || containsFold(n.Message, term)
		},
	})
	return s
}

type NotificationView struct {
	listview.View[entity.Notification]
	Counts    StatusCounts          `json:"counts"`
	MinExpiry string                `json:"minExpiry"`
	RowMeta   []NotificationRowMeta `json:"rowMeta"`
}

// NotificationRowMeta carries the render-ready strings for one visible row:
// the capitalized status badge and the formatted date cells.
type NotificationRowMeta struct {
	ID          string `json:"_id"`
	StatusLabel string `json:"statusLabel"`
	Created     string `json:"created"`
	Expiry      string `json:"expiry"`
}

func (s *NotificationStore) FetchAll(ctx context.Context) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch notifications: %v", err)
		return failFeedback(err, "Failed to fetch notifications.")
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return okFeedback("")
}

func (s *NotificationStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *NotificationStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *NotificationStore) Notifications() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Notification(nil), s.items...)
}

func validateNotification(n entity.Notification) error {
	if utf8.RuneCountInString(n.Message) > entity.MaxNotificationChars {
		return fmt.Errorf("message exceeds %d characters", entity.MaxNotificationChars)
	}
	return nil
}

func (s *NotificationStore) Create(ctx context.Context, n entity.Notification) Feedback {
	if err := validateNotification(n); err != nil {
		return Feedback{Success: false, Message: err.Error()}
	}

	created, msg, err := s.repo.Create(ctx, n)
	if err != nil {
		logger.Error("Failed to create notification: %v", err)
		return failFeedback(err, "Failed to create notification.")
	}

	if created != nil {
		s.mu.Lock()
		s.items = append([]entity.Notification{*created}, s.items...)
		s.mu.Unlock()
		publish(s.events, "notification", "created", created.ID)
	}
	return okFeedback(msg)
}

func (s *NotificationStore) Update(ctx context.Context, id string, n entity.Notification) Feedback {
	if err := validateNotification(n); err != nil {
		return Feedback{Success: false, Message: err.Error()}
	}

	updated, msg, err := s.repo.Update(ctx, id, n)
	if err != nil {
		logger.Error("Failed to update notification %s: %v", id, err)
		return failFeedback(err, "Failed to update notification.")
	}

	if updated != nil {
		s.replace(*updated)
	}
	publish(s.events, "notification", "updated", id)
	return okFeedback(msg)
}

func (s *NotificationStore) UpdateStatus(ctx context.Context, id string, status entity.Status) Feedback {
	updated, msg, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error("Failed to update notification status %s: %v", id, err)
		return failFeedback(err, "Failed to update notification status.")
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
	publish(s.events, "notification", "updated", id)
	return okFeedback(msg)
}

func (s *NotificationStore) Delete(ctx context.Context, id string) Feedback {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete notification %s: %v", id, err)
		return failFeedback(err, "Failed to delete notification.")
	}

	s.removeByID([]string{id})
	publish(s.events, "notification", "deleted", id)
	return okFeedback(msg)
}

func (s *NotificationStore) DeleteSelected(ctx context.Context) Feedback {
	s.mu.Lock()
	ids := s.list.SelectedIDs()
	s.mu.Unlock()
	if len(ids) == 0 {
		return Feedback{Success: false, Message: "No notifications selected."}
	}

	msg, err := s.repo.DeleteMany(ctx, ids)

	s.mu.Lock()
	s.list.ClearSelection()
	s.mu.Unlock()

	if err != nil {
		logger.Error("Failed to delete notifications: %v", err)
		return failFeedback(err, "Failed to delete selected notifications.")
	}

	s.removeByID(ids)
	publish(s.events, "notification", "deleted", "")
	return okFeedback(msg)
}

func (s *NotificationStore) replace(n entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == n.ID {
			s.items[i] = n
			return
		}
	}
}

func (s *NotificationStore) removeByID(ids []string) {
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

func (s *NotificationStore) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetStatusFilter(status)
}

func (s *NotificationStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetSearch(term)
}

func (s *NotificationStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetPageSize(size)
}

func (s *NotificationStore) ChangePage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.PageChange(page, s.items)
}

func (s *NotificationStore) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelect(id)
}

func (s *NotificationStore) ToggleSelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelectAll(s.items)
}

func (s *NotificationStore) View() NotificationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	view := s.list.View(s.items)
	meta := make([]NotificationRowMeta, len(view.Rows))
	for i, n := range view.Rows {
		meta[i] = NotificationRowMeta{
			ID:          n.ID,
			StatusLabel: n.EffectiveStatus(now).Label(),
			Created:     entity.FormatDateTime(n.CreatedAt),
			Expiry:      entity.FormatDate(n.Expiry),
		}
	}
	return NotificationView{
		View:      view,
		Counts:    s.counts(),
		MinExpiry: entity.MinExpiryDate(now),
		RowMeta:   meta,
	}
}

func (s *NotificationStore) Counts() StatusCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts()
}

func (s *NotificationStore) counts() StatusCounts {
	now := s.now()
	c := StatusCounts{Total: len(s.items)}
	for _, n := range s.items {
		switch n.EffectiveStatus(now) {
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

func (s *NotificationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.list.SetStatusFilter(listview.FilterAll)
	s.list.SetSearch("")
	s.list.ClearSelection()
}
