package usecase

import (
	"context"
	"sync"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
	"portalcms/pkg/listview"
	"portalcms/pkg/logger"
)

// ProviderStore caches the provider collection in display order. The status
// filter runs over the non-exclusive visibility flags rather than a derived
// status, and reorder keeps Order a contiguous permutation across the whole
// collection.
type ProviderStore struct {
	repo   repository.ProviderRepository
	events EventPublisher

	mu      sync.Mutex
	items   []entity.Provider
	loading bool
	list    *listview.Controller[entity.Provider]
}

func NewProviderStore(repo repository.ProviderRepository, events EventPublisher) *ProviderStore {
	s := &ProviderStore{repo: repo, events: events}
	s.list = listview.New(listview.Config[entity.Provider]{
		ID: func(p entity.Provider) string { return p.ID },
		Status: func(p entity.Provider, status string) bool {
			switch status {
			case "new":
				return p.NewGame
			case "top":
				return p.TopGame
			case "hidden":
				return p.Hidden
			}
			return false
		},
		Search: func(p entity.Provider, term string) bool {
			return containsFold(p.Name, term) || containsFold(p.Directory, term)
		},
	})
	return s
}

// ProviderCounts aggregates by visibility flag. The buckets overlap; a
// provider can be both new and top.
type ProviderCounts struct {
	Total  int `json:"total"`
	New    int `json:"new"`
	Top    int `json:"top"`
	Hidden int `json:"hidden"`
}

type ProviderView struct {
	listview.View[entity.Provider]
	Counts ProviderCounts `json:"counts"`
}

func (s *ProviderStore) FetchAll(ctx context.Context) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch providers: %v", err)
		return failFeedback(err, "Failed to fetch providers.")
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return okFeedback("")
}

func (s *ProviderStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ProviderStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *ProviderStore) Providers() []entity.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Provider(nil), s.items...)
}

func (s *ProviderStore) Create(ctx context.Context, p entity.Provider) Feedback {
	created, msg, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.Error("Failed to create provider: %v", err)
		return failFeedback(err, "Failed to create provider.")
	}

	if created != nil {
		s.mu.Lock()
		s.items = append([]entity.Provider{*created}, s.items...)
		s.mu.Unlock()
		publish(s.events, "provider", "created", created.ID)
	}
	return okFeedback(msg)
}

func (s *ProviderStore) Update(ctx context.Context, id string, p entity.Provider) Feedback {
	updated, msg, err := s.repo.Update(ctx, id, p)
	if err != nil {
		logger.Error("Failed to update provider %s: %v", id, err)
		return failFeedback(err, "Failed to update provider.")
	}

	if updated != nil {
		s.replace(*updated)
	}
	publish(s.events, "provider", "updated", id)
	return okFeedback(msg)
}

// UpdateFlag flips one visibility flag. Only the named flag moves in the
// cache.
func (s *ProviderStore) UpdateFlag(ctx context.Context, id string, flag string, value bool) Feedback {
	switch flag {
	case entity.ProviderFlagNew, entity.ProviderFlagTop, entity.ProviderFlagHidden:
	default:
		return Feedback{Success: false, Message: "Unknown provider flag."}
	}

	msg, err := s.repo.UpdateFlag(ctx, id, flag, value)
	if err != nil {
		logger.Error("Failed to update provider flag %s on %s: %v", flag, id, err)
		return failFeedback(err, "Failed to update provider.")
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		switch flag {
		case entity.ProviderFlagNew:
			s.items[i].NewGame = value
		case entity.ProviderFlagTop:
			s.items[i].TopGame = value
		case entity.ProviderFlagHidden:
			s.items[i].Hidden = value
		}
		break
	}
	s.mu.Unlock()

	publish(s.events, "provider", "updated", id)
	return okFeedback(msg)
}

func (s *ProviderStore) Delete(ctx context.Context, id string) Feedback {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete provider %s: %v", id, err)
		return failFeedback(err, "Failed to delete provider.")
	}

	s.removeByID([]string{id})
	publish(s.events, "provider", "deleted", id)
	return okFeedback(msg)
}

func (s *ProviderStore) DeleteSelected(ctx context.Context) Feedback {
	s.mu.Lock()
	ids := s.list.SelectedIDs()
	s.mu.Unlock()
	if len(ids) == 0 {
		return Feedback{Success: false, Message: "No providers selected."}
	}

	msg, err := s.repo.DeleteMany(ctx, ids)

	s.mu.Lock()
	s.list.ClearSelection()
	s.mu.Unlock()

	if err != nil {
		logger.Error("Failed to delete providers: %v", err)
		return failFeedback(err, "Failed to delete selected providers.")
	}

	s.removeByID(ids)
	publish(s.events, "provider", "deleted", "")
	return okFeedback(msg)
}

// Reorder moves the row at source to destination within the currently
// filtered view. Unfiltered providers keep their slots, every Order field is
// renumbered to stay contiguous, and the optimistic ordering is rolled back
// when the backend rejects the full ordered id list. On success the backend's
// canonical collection replaces the cache.
func (s *ProviderStore) Reorder(ctx context.Context, source, destination int) Feedback {
	s.mu.Lock()
	previous := append([]entity.Provider(nil), s.items...)
	filtered := s.list.Filtered(s.items)
	if source < 0 || source >= len(filtered) || destination < 0 || destination >= len(filtered) {
		s.mu.Unlock()
		return Feedback{Success: false, Message: "Invalid reorder position."}
	}
	if source == destination {
		s.mu.Unlock()
		return okFeedback("")
	}

	moved := spliceMove(filtered, source, destination)
	inView := make(map[string]struct{}, len(filtered))
	for _, p := range filtered {
		inView[p.ID] = struct{}{}
	}

	reordered := make([]entity.Provider, 0, len(s.items))
	next := 0
	for _, p := range s.items {
		if _, ok := inView[p.ID]; ok {
			reordered = append(reordered, moved[next])
			next++
		} else {
			reordered = append(reordered, p)
		}
	}
	orderedIDs := make([]string, len(reordered))
	for i := range reordered {
		reordered[i].Order = i
		orderedIDs[i] = reordered[i].ID
	}
	s.items = reordered
	s.mu.Unlock()

	providers, msg, err := s.repo.Reorder(ctx, orderedIDs)
	if err != nil {
		logger.Error("Failed to reorder providers: %v", err)
		s.mu.Lock()
		s.items = previous
		s.mu.Unlock()
		return failFeedback(err, "Failed to reorder providers.")
	}

	if len(providers) > 0 {
		s.mu.Lock()
		s.items = providers
		s.mu.Unlock()
	}
	publish(s.events, "provider", "reordered", "")
	return okFeedback(msg)
}

func spliceMove(list []entity.Provider, from, to int) []entity.Provider {
	out := append([]entity.Provider(nil), list...)
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, entity.Provider{})
	copy(out[to+1:], out[to:])
	out[to] = item
	return out
}

func (s *ProviderStore) replace(p entity.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = p
			return
		}
	}
}

func (s *ProviderStore) removeByID(ids []string) {
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

func (s *ProviderStore) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetStatusFilter(status)
}

func (s *ProviderStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetSearch(term)
}

func (s *ProviderStore) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.SetPageSize(size)
}

func (s *ProviderStore) ChangePage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.PageChange(page, s.items)
}

func (s *ProviderStore) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelect(id)
}

func (s *ProviderStore) ToggleSelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.ToggleSelectAll(s.items)
}

func (s *ProviderStore) View() ProviderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProviderView{
		View:   s.list.View(s.items),
		Counts: s.counts(),
	}
}

func (s *ProviderStore) Counts() ProviderCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts()
}

func (s *ProviderStore) counts() ProviderCounts {
	c := ProviderCounts{Total: len(s.items)}
	for _, p := range s.items {
		if p.NewGame {
			c.New++
		}
		if p.TopGame {
			c.Top++
		}
		if p.Hidden {
			c.Hidden++
		}
	}
	return c
}

func (s *ProviderStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.list.SetStatusFilter(listview.FilterAll)
	s.list.SetSearch("")
	s.list.ClearSelection()
}
