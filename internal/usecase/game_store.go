package usecase

import (
	"context"
	"sync"

	"portalcms/internal/domain/entity"
	"portalcms/internal/domain/repository"
	"portalcms/internal/domain/service"
	"portalcms/pkg/logger"
)

// GameStore holds the working game list for the provider currently open in
// the admin. LoadProviderGames merges the third-party catalog with the
// backend's stored tag records; ToggleTag lazily creates backend records for
// catalog-only games on their first tag.
type GameStore struct {
	repo    repository.GameRepository
	catalog service.CatalogService
	events  EventPublisher

	mu      sync.Mutex
	games   []entity.Game
	search  string
	loading bool
}

func NewGameStore(repo repository.GameRepository, catalog service.CatalogService, events EventPublisher) *GameStore {
	return &GameStore{repo: repo, catalog: catalog, events: events}
}

// LoadProviderGames fetches the catalog list and overlays every backend
// record matched by game code, so stored tags win over the catalog's blank
// tag state. The merged list is sorted by tag priority.
func (s *GameStore) LoadProviderGames(ctx context.Context, providerName string, mobile bool) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	catalogGames, err := s.catalog.ProviderGames(ctx, providerName, mobile)
	if err != nil {
		logger.Error("Failed to fetch catalog games for %s: %v", providerName, err)
		return failFeedback(err, "Failed to fetch games.")
	}

	stored, err := s.repo.List(ctx, providerName)
	if err != nil {
		logger.Error("Failed to fetch stored games for %s: %v", providerName, err)
		return failFeedback(err, "Failed to fetch games.")
	}

	byCode := make(map[string]entity.Game, len(stored))
	for _, g := range stored {
		byCode[g.GameID] = g
	}
	merged := make([]entity.Game, len(catalogGames))
	for i, g := range catalogGames {
		if rec, ok := byCode[g.GameID]; ok {
			g.ID = rec.ID
			g.Tags = rec.Tags
		}
		merged[i] = g
	}
	entity.SortGames(merged)

	s.mu.Lock()
	s.games = merged
	s.mu.Unlock()
	return okFeedback("")
}

// FetchStored replaces the working list with the backend's stored records
// only, without touching the catalog.
func (s *GameStore) FetchStored(ctx context.Context, providerName string) Feedback {
	s.setLoading(true)
	defer s.setLoading(false)

	stored, err := s.repo.List(ctx, providerName)
	if err != nil {
		logger.Error("Failed to fetch stored games: %v", err)
		return failFeedback(err, "Failed to fetch games.")
	}

	entity.SortGames(stored)
	s.mu.Lock()
	s.games = stored
	s.mu.Unlock()
	return okFeedback("")
}

func (s *GameStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *GameStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *GameStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Games returns the working list narrowed by the current search term.
func (s *GameStore) Games() []entity.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Game, 0, len(s.games))
	for _, g := range s.games {
		if s.search == "" || containsFold(g.GameName, s.search) || containsFold(g.GameID, s.search) {
			out = append(out, g)
		}
	}
	return out
}

// ToggleTag flips one tag on a game. Tag state lives on the backend record:
// when one exists its stored tags are the base for the toggle, otherwise the
// working-list snapshot seeds a new record carrying the toggled set. The
// working list is patched and re-sorted either way.
func (s *GameStore) ToggleTag(ctx context.Context, gameID string, tagName string) Feedback {
	flag, ok := entity.TagFromName(tagName)
	if !ok {
		return Feedback{Success: false, Message: "Unknown game tag."}
	}

	s.mu.Lock()
	var snapshot *entity.Game
	for i := range s.games {
		if s.games[i].GameID == gameID {
			g := s.games[i]
			snapshot = &g
			break
		}
	}
	s.mu.Unlock()
	if snapshot == nil {
		return Feedback{Success: false, Message: "Game not found."}
	}

	record, exists, err := s.repo.GetByGameID(ctx, gameID)
	if err != nil {
		logger.Error("Failed to look up game %s: %v", gameID, err)
		return failFeedback(err, "Failed to update game tag.")
	}

	var msg string
	var backendID string
	var newTags entity.TagSet
	if exists && record != nil {
		newTags = record.Tags.Toggle(flag)
		updated, m, err := s.repo.UpdateTags(ctx, record.ID, newTags)
		if err != nil {
			logger.Error("Failed to update tags for game %s: %v", gameID, err)
			return failFeedback(err, "Failed to update game tag.")
		}
		msg = m
		backendID = record.ID
		if updated != nil {
			newTags = updated.Tags
			backendID = updated.ID
		}
	} else {
		newTags = snapshot.Tags.Toggle(flag)
		seed := *snapshot
		seed.ID = ""
		seed.Tags = newTags
		created, m, err := s.repo.Create(ctx, seed)
		if err != nil {
			logger.Error("Failed to create game record for %s: %v", gameID, err)
			return failFeedback(err, "Failed to update game tag.")
		}
		msg = m
		if created != nil {
			newTags = created.Tags
			backendID = created.ID
		}
	}

	s.mu.Lock()
	for i := range s.games {
		if s.games[i].GameID == gameID {
			s.games[i].Tags = newTags
			if backendID != "" {
				s.games[i].ID = backendID
			}
			break
		}
	}
	entity.SortGames(s.games)
	s.mu.Unlock()

	publish(s.events, "game", "updated", gameID)
	return okFeedback(msg)
}

func (s *GameStore) Create(ctx context.Context, g entity.Game) Feedback {
	created, msg, err := s.repo.Create(ctx, g)
	if err != nil {
		logger.Error("Failed to create game: %v", err)
		return failFeedback(err, "Failed to create game.")
	}

	if created != nil {
		s.mu.Lock()
		s.games = append([]entity.Game{*created}, s.games...)
		entity.SortGames(s.games)
		s.mu.Unlock()
		publish(s.events, "game", "created", created.GameID)
	}
	return okFeedback(msg)
}

func (s *GameStore) Update(ctx context.Context, id string, g entity.Game) Feedback {
	updated, msg, err := s.repo.Update(ctx, id, g)
	if err != nil {
		logger.Error("Failed to update game %s: %v", id, err)
		return failFeedback(err, "Failed to update game.")
	}

	if updated != nil {
		s.mu.Lock()
		for i := range s.games {
			if s.games[i].ID == id {
				s.games[i] = *updated
				break
			}
		}
		entity.SortGames(s.games)
		s.mu.Unlock()
	}
	publish(s.events, "game", "updated", id)
	return okFeedback(msg)
}

func (s *GameStore) Delete(ctx context.Context, id string) Feedback {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("Failed to delete game %s: %v", id, err)
		return failFeedback(err, "Failed to delete game.")
	}

	s.mu.Lock()
	kept := s.games[:0]
	for _, g := range s.games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.games = kept
	s.mu.Unlock()

	publish(s.events, "game", "deleted", id)
	return okFeedback(msg)
}

// DeleteMany removes a batch of stored records in one backend call. The ids
// come straight from the caller because the working list has no persistent
// selection; rows are dropped locally only when the backend confirms.
func (s *GameStore) DeleteMany(ctx context.Context, ids []string) Feedback {
	if len(ids) == 0 {
		return Feedback{Success: false, Message: "No games selected."}
	}

	msg, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		logger.Error("Failed to delete games: %v", err)
		return failFeedback(err, "Failed to delete selected games.")
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	s.mu.Lock()
	kept := s.games[:0]
	for _, g := range s.games {
		if !drop[g.ID] {
			kept = append(kept, g)
		}
	}
	s.games = kept
	s.mu.Unlock()

	publish(s.events, "game", "deleted", "")
	return okFeedback(msg)
}

func (s *GameStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = nil
	s.search = ""
	s.loading = false
}
