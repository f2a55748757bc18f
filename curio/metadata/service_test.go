package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curiodex/curio/curio/database/models"
)

type fakeGameStore struct {
	row     *models.Game
	gets    int
	upserts []*models.Game
}

func (f *fakeGameStore) GetByRemoteID(context.Context, int64) (*models.Game, error) {
	f.gets++
	return f.row, nil
}

func (f *fakeGameStore) Upsert(_ context.Context, game *models.Game) error {
	f.upserts = append(f.upserts, game)
	f.row = game
	return nil
}

type fakeMirror struct {
	calls int
	urls  []string
}

func (f *fakeMirror) MirrorCover(_ context.Context, _ int64, coverURL string) error {
	f.calls++
	f.urls = append(f.urls, coverURL)
	return nil
}

func catalogServer(t *testing.T, hits *atomic.Int32, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func Test_Service_EnsureGame_FreshRowSkipsCatalog(t *testing.T) {
	var hits atomic.Int32
	server := catalogServer(t, &hits, http.StatusOK, `{}`)
	defer server.Close()

	store := &fakeGameStore{row: &models.Game{RemoteID: 7, Title: "Foo", FetchedAt: time.Now()}}
	s := NewService(NewClient(server.URL, "k"), store, nil, 12*time.Hour)

	game, err := s.EnsureGame(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnsureGame() error = %v", err)
	}
	if game == nil || game.Title != "Foo" {
		t.Fatalf("EnsureGame() = %+v", game)
	}
	if hits.Load() != 0 {
		t.Errorf("catalog hits = %d, want 0 for fresh row", hits.Load())
	}

	// Second call is answered from the in-process cache without the store.
	if _, err := s.EnsureGame(context.Background(), 7); err != nil {
		t.Fatalf("EnsureGame() second call error = %v", err)
	}
	if store.gets != 1 {
		t.Errorf("store gets = %d, want 1", store.gets)
	}
}

func Test_Service_EnsureGame_StaleRowRefetches(t *testing.T) {
	var hits atomic.Int32
	server := catalogServer(t, &hits, http.StatusOK,
		`{"id":7,"name":"Foo Remastered","background_image":"https://img.example/foo.jpg","rating":4.1}`)
	defer server.Close()

	store := &fakeGameStore{row: &models.Game{RemoteID: 7, Title: "Foo", FetchedAt: time.Now().Add(-48 * time.Hour)}}
	mirror := &fakeMirror{}
	s := NewService(NewClient(server.URL, "k"), store, mirror, 12*time.Hour)

	game, err := s.EnsureGame(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnsureGame() error = %v", err)
	}
	if game.Title != "Foo Remastered" {
		t.Errorf("title = %s, want refreshed title", game.Title)
	}
	if hits.Load() != 1 {
		t.Errorf("catalog hits = %d, want 1", hits.Load())
	}
	if len(store.upserts) != 1 {
		t.Errorf("upserts = %d, want 1", len(store.upserts))
	}
	if mirror.calls != 1 || mirror.urls[0] != "https://img.example/foo.jpg" {
		t.Errorf("mirror calls = %d urls = %v", mirror.calls, mirror.urls)
	}
}

func Test_Service_EnsureGame_DroppedFromCatalogServesStaleRow(t *testing.T) {
	var hits atomic.Int32
	server := catalogServer(t, &hits, http.StatusNotFound, "")
	defer server.Close()

	store := &fakeGameStore{row: &models.Game{RemoteID: 7, Title: "Delisted", FetchedAt: time.Now().Add(-48 * time.Hour)}}
	s := NewService(NewClient(server.URL, "k"), store, nil, 12*time.Hour)

	game, err := s.EnsureGame(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnsureGame() error = %v", err)
	}
	if game == nil || game.Title != "Delisted" {
		t.Errorf("EnsureGame() = %+v, want stale row", game)
	}
}

func Test_Service_EnsureGame_UnknownIDIsSoftNil(t *testing.T) {
	var hits atomic.Int32
	server := catalogServer(t, &hits, http.StatusNotFound, "")
	defer server.Close()

	store := &fakeGameStore{}
	s := NewService(NewClient(server.URL, "k"), store, nil, 12*time.Hour)

	game, err := s.EnsureGame(context.Background(), 404404)
	if err != nil {
		t.Fatalf("EnsureGame() error = %v", err)
	}
	if game != nil {
		t.Errorf("EnsureGame() = %+v, want nil", game)
	}

	// Negative results are not cached; the next call asks the catalog again.
	if _, err := s.EnsureGame(context.Background(), 404404); err != nil {
		t.Fatalf("EnsureGame() second call error = %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("catalog hits = %d, want 2", hits.Load())
	}
}
