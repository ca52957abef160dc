package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portalcms/internal/domain/entity"
	apperrors "portalcms/pkg/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestListBareArray(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/announcements/", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.Announcement{{ID: "a1", Desc: "hello"}})
	}))
	defer srv.Close()

	repo := NewAnnouncementRepository(c)
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
}

func TestListWrappedObject(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"announcements": []entity.Announcement{{ID: "a1"}, {ID: "a2"}},
		})
	}))
	defer srv.Close()

	repo := NewAnnouncementRepository(c)
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreateSynthesizesMessage(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Backend returns the canonical entity but no message.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"banner": entity.Banner{ID: "b1", URL: "https://img/x.webp"},
		})
	}))
	defer srv.Close()

	repo := NewBannerRepository(c)
	banner, msg, err := repo.Create(context.Background(), entity.Banner{URL: "https://img/x.webp"})
	require.NoError(t, err)
	require.NotNil(t, banner)
	assert.Equal(t, "b1", banner.ID)
	assert.Equal(t, "Banner created successfully.", msg)
}

func TestCreatePassesBackendMessageThrough(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"announcement": entity.Announcement{ID: "a1"},
			"message":      "Announcement added successfully",
		})
	}))
	defer srv.Close()

	repo := NewAnnouncementRepository(c)
	_, msg, err := repo.Create(context.Background(), entity.Announcement{Desc: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Announcement added successfully", msg)
}

func TestBackendFailureBecomesUpstreamError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to create banner"})
	}))
	defer srv.Close()

	repo := NewBannerRepository(c)
	_, _, err := repo.Create(context.Background(), entity.Banner{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "UPSTREAM_ERROR"))
	assert.Contains(t, err.Error(), "Failed to create banner")
}

func TestBulkDeleteSuccessSubstring(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/banners/bulk-delete", r.URL.Path)
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, []string{"b1", "b2"}, body["ids"])
		json.NewEncoder(w).Encode(map[string]string{"message": "2 banners deleted Successfully"})
	}))
	defer srv.Close()

	repo := NewBannerRepository(c)
	msg, err := repo.DeleteMany(context.Background(), []string{"b1", "b2"})
	require.NoError(t, err)
	assert.Equal(t, "2 banners deleted Successfully", msg)
}

func TestBulkDeleteMessageWithoutSuccessIsFailure(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 response whose message does not admit success: the legacy
		// convention treats this as a failure.
		json.NewEncoder(w).Encode(map[string]string{"message": "nothing was removed"})
	}))
	defer srv.Close()

	repo := NewBannerRepository(c)
	_, err := repo.DeleteMany(context.Background(), []string{"b1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "UPSTREAM_ERROR"))
}

func TestBannerFacetPatchRoutes(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	repo := NewBannerRepository(c)

	msg, err := repo.UpdateDevice(context.Background(), "b1", entity.DeviceMobile)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/banners/device/b1", gotPath)
	assert.Equal(t, "mobile", gotBody["device"])
	assert.Equal(t, "Banner device updated successfully.", msg)

	_, err = repo.UpdateTheme(context.Background(), "b1", entity.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, "/banners/theme/b1", gotPath)
	assert.Equal(t, "dark", gotBody["theme"])
}

func TestProviderReorder(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/providers/reorder", r.URL.Path)
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		providers := make([]entity.Provider, len(body["orderedIds"]))
		for i, id := range body["orderedIds"] {
			providers[i] = entity.Provider{ID: id, Order: i}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"providers": providers,
			"message":   "Providers reordered successfully",
		})
	}))
	defer srv.Close()

	repo := NewProviderRepository(c)
	providers, _, err := repo.Reorder(context.Background(), []string{"p2", "p1", "p3"})
	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, "p2", providers[0].ID)
	assert.Equal(t, 0, providers[0].Order)
}

func TestGameExistsCheck(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/games/known" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"exists": true,
				"game":   entity.Game{ID: "g1", GameID: "known", Tags: entity.TagTop},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"exists": false})
	}))
	defer srv.Close()

	repo := NewGameRepository(c)

	game, exists, err := repo.GetByGameID(context.Background(), "known")
	require.NoError(t, err)
	assert.True(t, exists)
	require.NotNil(t, game)
	assert.Equal(t, "g1", game.ID)

	_, exists, err = repo.GetByGameID(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)
	repo := NewAnnouncementRepository(c)
	_, err := repo.List(context.Background())
	assert.Error(t, err)
}
