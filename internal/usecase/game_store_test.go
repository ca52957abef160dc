package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portalcms/internal/domain/entity"
	apperrors "portalcms/pkg/errors"
)

type fakeCatalog struct {
	games []entity.Game
	err   error
}

func (f *fakeCatalog) ProviderGames(ctx context.Context, providerName string, mobile bool) ([]entity.Game, error) {
	return f.games, f.err
}

type fakeGameRepo struct {
	stored      []entity.Game
	byGameID    map[string]entity.Game
	created     *entity.Game
	updatedID   string
	updatedTags entity.TagSet
	deletedIDs  []string
	deleteErr   error
}

func (f *fakeGameRepo) List(ctx context.Context, provider string) ([]entity.Game, error) {
	return f.stored, nil
}

func (f *fakeGameRepo) Create(ctx context.Context, g entity.Game) (*entity.Game, string, error) {
	g.ID = "rec-new"
	f.created = &g
	return &g, "Game created successfully.", nil
}

func (f *fakeGameRepo) Update(ctx context.Context, id string, g entity.Game) (*entity.Game, string, error) {
	g.ID = id
	return &g, "Game updated successfully.", nil
}

func (f *fakeGameRepo) UpdateTags(ctx context.Context, id string, tags entity.TagSet) (*entity.Game, string, error) {
	f.updatedID = id
	f.updatedTags = tags
	return nil, "Game updated successfully.", nil
}

func (f *fakeGameRepo) Delete(ctx context.Context, id string) (string, error) {
	return "Game deleted successfully.", nil
}

func (f *fakeGameRepo) DeleteMany(ctx context.Context, ids []string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deletedIDs = ids
	return "Games deleted successfully.", nil
}

func (f *fakeGameRepo) GetByGameID(ctx context.Context, gameID string) (*entity.Game, bool, error) {
	g, ok := f.byGameID[gameID]
	if !ok {
		return nil, false, nil
	}
	return &g, true, nil
}

func catalogFixture() []entity.Game {
	return []entity.Game{
		{GameID: "g-1", GameName: "Fortune Tiger", GameProvider: "PG Soft"},
		{GameID: "g-2", GameName: "Mahjong Ways", GameProvider: "PG Soft"},
		{GameID: "g-3", GameName: "Lucky Neko", GameProvider: "PG Soft"},
	}
}

func TestGameStoreMergeOverlaysStoredTags(t *testing.T) {
	repo := &fakeGameRepo{
		stored: []entity.Game{
			{ID: "rec-2", GameID: "g-2", GameName: "Mahjong Ways", Tags: entity.TagTop | entity.TagHot},
		},
	}
	catalog := &fakeCatalog{games: catalogFixture()}
	store := NewGameStore(repo, catalog, nil)

	fb := store.LoadProviderGames(context.Background(), "PG Soft", false)
	require.True(t, fb.Success)

	games := store.Games()
	require.Len(t, games, 3)
	// The tagged game sorts to the front, the untagged pair keeps its
	// catalog order behind it.
	assert.Equal(t, "g-2", games[0].GameID)
	assert.Equal(t, "rec-2", games[0].ID)
	assert.Equal(t, entity.TagTop|entity.TagHot, games[0].Tags)
	assert.Equal(t, "g-1", games[1].GameID)
	assert.Equal(t, "g-3", games[2].GameID)
	assert.Empty(t, games[1].ID)
}

func TestGameStoreToggleTagOnExistingRecord(t *testing.T) {
	repo := &fakeGameRepo{
		stored: []entity.Game{
			{ID: "rec-2", GameID: "g-2", GameName: "Mahjong Ways", Tags: entity.TagTop},
		},
		byGameID: map[string]entity.Game{
			"g-2": {ID: "rec-2", GameID: "g-2", Tags: entity.TagTop},
		},
	}
	store := NewGameStore(repo, &fakeCatalog{games: catalogFixture()}, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	fb := store.ToggleTag(context.Background(), "g-2", "hot")
	assert.True(t, fb.Success)
	assert.Equal(t, "rec-2", repo.updatedID)
	assert.Equal(t, entity.TagTop|entity.TagHot, repo.updatedTags)
	assert.Nil(t, repo.created)

	for _, g := range store.Games() {
		if g.GameID == "g-2" {
			assert.Equal(t, entity.TagTop|entity.TagHot, g.Tags)
		}
	}
}

func TestGameStoreToggleTagCreatesRecordForCatalogOnlyGame(t *testing.T) {
	repo := &fakeGameRepo{}
	store := NewGameStore(repo, &fakeCatalog{games: catalogFixture()}, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	fb := store.ToggleTag(context.Background(), "g-1", "new")
	assert.True(t, fb.Success)
	require.NotNil(t, repo.created)
	assert.Equal(t, "g-1", repo.created.GameID)
	assert.Equal(t, entity.TagNew, repo.created.Tags)
	assert.Empty(t, repo.updatedID)

	games := store.Games()
	// The newly tagged game outranks the untagged ones.
	assert.Equal(t, "g-1", games[0].GameID)
	assert.Equal(t, "rec-new", games[0].ID)
}

func TestGameStoreToggleTagOffRemovesFlag(t *testing.T) {
	repo := &fakeGameRepo{
		byGameID: map[string]entity.Game{
			"g-1": {ID: "rec-1", GameID: "g-1", Tags: entity.TagNew | entity.TagHot},
		},
	}
	store := NewGameStore(repo, &fakeCatalog{games: catalogFixture()}, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	fb := store.ToggleTag(context.Background(), "g-1", "new")
	assert.True(t, fb.Success)
	assert.Equal(t, entity.TagHot, repo.updatedTags)
}

func TestGameStoreToggleTagUnknownInputs(t *testing.T) {
	store := NewGameStore(&fakeGameRepo{}, &fakeCatalog{games: catalogFixture()}, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	assert.False(t, store.ToggleTag(context.Background(), "g-1", "mega").Success)
	assert.False(t, store.ToggleTag(context.Background(), "missing", "hot").Success)
}

func TestGameStoreSearchFiltersWorkingList(t *testing.T) {
	store := NewGameStore(&fakeGameRepo{}, &fakeCatalog{games: catalogFixture()}, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	store.SetSearch("mahjong")
	games := store.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "g-2", games[0].GameID)

	store.SetSearch("")
	assert.Len(t, store.Games(), 3)
}

func TestGameStoreCatalogFailureKeepsWorkingList(t *testing.T) {
	catalog := &fakeCatalog{games: catalogFixture()}
	store := NewGameStore(&fakeGameRepo{}, catalog, nil)
	require.True(t, store.LoadProviderGames(context.Background(), "PG Soft", false).Success)

	catalog.err = assert.AnError
	fb := store.LoadProviderGames(context.Background(), "PG Soft", false)
	assert.False(t, fb.Success)
	assert.Len(t, store.Games(), 3)
	assert.False(t, store.Loading())
}

func TestGameStoreFetchStoredSkipsCatalog(t *testing.T) {
	repo := &fakeGameRepo{stored: []entity.Game{
		{ID: "rec-1", GameID: "g-1", GameName: "Fortune Tiger", Tags: entity.TagNew},
	}}
	store := NewGameStore(repo, &fakeCatalog{err: assert.AnError}, nil)

	fb := store.FetchStored(context.Background(), "PG Soft")
	require.True(t, fb.Success)

	games := store.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "rec-1", games[0].ID)
}

func TestGameStoreDeleteManyRemovesConfirmedRows(t *testing.T) {
	repo := &fakeGameRepo{stored: []entity.Game{
		{ID: "rec-1", GameID: "g-1", GameName: "Fortune Tiger"},
		{ID: "rec-2", GameID: "g-2", GameName: "Mahjong Ways"},
		{ID: "rec-3", GameID: "g-3", GameName: "Lucky Neko"},
	}}
	store := NewGameStore(repo, &fakeCatalog{}, nil)
	require.True(t, store.FetchStored(context.Background(), "PG Soft").Success)

	fb := store.DeleteMany(context.Background(), []string{"rec-1", "rec-3"})
	require.True(t, fb.Success)
	assert.Equal(t, "Games deleted successfully.", fb.Message)
	assert.Equal(t, []string{"rec-1", "rec-3"}, repo.deletedIDs)

	games := store.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "rec-2", games[0].ID)
}

func TestGameStoreDeleteManyFailureKeepsRows(t *testing.T) {
	repo := &fakeGameRepo{
		stored:    []entity.Game{{ID: "rec-1", GameID: "g-1", GameName: "Fortune Tiger"}},
		deleteErr: apperrors.Upstream("Some games could not be deleted", nil),
	}
	store := NewGameStore(repo, &fakeCatalog{}, nil)
	require.True(t, store.FetchStored(context.Background(), "PG Soft").Success)

	fb := store.DeleteMany(context.Background(), []string{"rec-1"})
	assert.False(t, fb.Success)
	assert.Equal(t, "Some games could not be deleted", fb.Message)
	assert.Len(t, store.Games(), 1)
}

func TestGameStoreDeleteManyEmptyIDs(t *testing.T) {
	store := NewGameStore(&fakeGameRepo{}, &fakeCatalog{}, nil)
	fb := store.DeleteMany(context.Background(), nil)
	assert.False(t, fb.Success)
	assert.Equal(t, "No games selected.", fb.Message)
}
