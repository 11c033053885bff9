package services_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"satyaphoto/internal/domain"
	"satyaphoto/internal/mediastore/local"
	"satyaphoto/internal/repos"
	"satyaphoto/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	blobs, err := local.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return services.NewCatalogService(repos.NewMediaRepo(memdb(t)), blobs)
}

func TestCatalogStartsEmpty(t *testing.T) {
	svc := newCatalog(t)
	items, err := svc.GetAllMedia()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty catalog on first run, got %d items", len(items))
	}
}

func TestAddMediaNewestFirstUniqueIDs(t *testing.T) {
	svc := newCatalog(t)

	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		m, err := svc.AddMedia(domain.MediaItem{
			Title: title, Type: "photo", Category: domain.CategoryWedding,
			URL: "https://example.test/" + title + ".jpg", UploadedBy: "u-owner",
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, m.ID)
	}

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}

	items, err := svc.GetAllMedia()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %d", len(items))
	}
	// Newest first: reverse of insertion order.
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if items[i].Title != w {
			t.Fatalf("position %d: want %q, got %q", i, w, items[i].Title)
		}
	}
}

func TestDeleteMedia(t *testing.T) {
	svc := newCatalog(t)
	m, err := svc.AddMedia(domain.MediaItem{
		Type: "photo", Category: domain.CategoryEvents,
		URL: "https://example.test/e.jpg", UploadedBy: "u-owner",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteMedia(context.Background(), m.ID); err != nil {
		t.Fatal(err)
	}
	items, _ := svc.GetAllMedia()
	for _, it := range items {
		if it.ID == m.ID {
			t.Fatalf("item %s still present after delete", m.ID)
		}
	}

	// Deleting an absent id is a no-op.
	before, _ := svc.GetAllMedia()
	if err := svc.DeleteMedia(context.Background(), "does-not-exist"); err != nil {
		t.Fatalf("delete of absent id should be a no-op, got %v", err)
	}
	after, _ := svc.GetAllMedia()
	if len(before) != len(after) {
		t.Fatalf("collection changed by deleting an absent id: %d -> %d", len(before), len(after))
	}
}

func TestDeleteMediaSurfacesStoreFailure(t *testing.T) {
	db := memdb(t)
	blobs, err := local.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := services.NewCatalogService(repos.NewMediaRepo(db), blobs)
	m, err := svc.AddMedia(domain.MediaItem{
		Type: "photo", Category: domain.CategoryEvents,
		URL: "https://example.test/e.jpg", UploadedBy: "u-owner",
	})
	if err != nil {
		t.Fatal(err)
	}

	// A broken database must not masquerade as "already deleted".
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteMedia(context.Background(), m.ID); err == nil {
		t.Fatal("expected an error when the database is unavailable")
	}
}

func TestSetAllMediaRoundTrip(t *testing.T) {
	svc := newCatalog(t)
	now := time.Now().UTC()
	want := []domain.MediaItem{
		{ID: "3", Title: "c", Type: "video", Category: domain.CategoryEngagement,
			URL: "https://example.test/c.mp4", UploadedBy: "u-owner",
			CreatedAt: now.Format(time.RFC3339Nano)},
		{ID: "2", Title: "b", Type: "photo", Category: domain.CategoryNewborn,
			URL: "https://example.test/b.jpg", UploadedBy: "u-owner",
			CreatedAt: now.Add(-time.Hour).Format(time.RFC3339Nano)},
		{ID: "1", Title: "a", Type: "photo", Category: domain.CategoryWedding,
			URL: "https://example.test/a.jpg", UploadedBy: "u-owner",
			CreatedAt: now.Add(-2 * time.Hour).Format(time.RFC3339Nano)},
	}

	if err := svc.SetAllMedia(want); err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetAllMedia()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("want %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d differs:\nwant %+v\ngot  %+v", i, want[i], got[i])
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	svc := newCatalog(t)
	cats := []string{
		domain.CategoryWedding, domain.CategoryWedding,
		domain.CategoryBirthdays, domain.CategoryEvents,
	}
	for i, cat := range cats {
		if _, err := svc.AddMedia(domain.MediaItem{
			Type: "photo", Category: cat,
			URL: "https://example.test/x.jpg", UploadedBy: "u-owner",
			ID:  string(rune('a' + i)),
		}); err != nil {
			t.Fatal(err)
		}
	}

	weddings, err := svc.GetMediaFiltered(domain.CategoryWedding)
	if err != nil {
		t.Fatal(err)
	}
	if len(weddings) != 2 {
		t.Fatalf("want 2 wedding items, got %d", len(weddings))
	}
	for _, m := range weddings {
		if m.Category != domain.CategoryWedding {
			t.Fatalf("filtered view leaked category %q", m.Category)
		}
	}

	all, err := svc.GetMediaFiltered("all")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(cats) {
		t.Fatalf("filter 'all' should return the full catalog: want %d, got %d", len(cats), len(all))
	}

	counts, err := svc.Counts()
	if err != nil {
		t.Fatal(err)
	}
	if counts["all"] != 4 || counts[domain.CategoryWedding] != 2 || counts[domain.CategoryNewborn] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestUploadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	blobs, err := local.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	svc := services.NewCatalogService(repos.NewMediaRepo(memdb(t)), blobs)

	raw := []byte("not-really-a-jpeg but good enough for round-tripping")
	m, err := svc.Upload(context.Background(), bytes.NewReader(raw), "ceremony.jpg", "Test", "photo", domain.CategoryWedding, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if m.Category != domain.CategoryWedding || m.Type != "photo" || m.Title != "Test" {
		t.Fatalf("unexpected item: %+v", m)
	}
	if !strings.HasPrefix(m.URL, "/media/") {
		t.Fatalf("expected /media/ URL, got %q", m.URL)
	}

	rc, mimeType, err := blobs.Get(context.Background(), strings.TrimPrefix(m.URL, "/media/"))
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("stored bytes differ from original")
	}
	if mimeType != "image/jpeg" {
		t.Fatalf("want image/jpeg, got %s", mimeType)
	}
}

func TestUploadTitleDefaultsToFilename(t *testing.T) {
	svc := newCatalog(t)
	m, err := svc.Upload(context.Background(), strings.NewReader("x"), "birthday.png", "", "photo", domain.CategoryBirthdays, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != "birthday.png" {
		t.Fatalf("want title to default to file name, got %q", m.Title)
	}

	items, _ := svc.GetAllMedia()
	if len(items) != 1 || items[0].Category != domain.CategoryBirthdays {
		t.Fatalf("uploaded item not in catalog: %+v", items)
	}
}

func TestUploadRejectsBadEnum(t *testing.T) {
	svc := newCatalog(t)
	if _, err := svc.Upload(context.Background(), strings.NewReader("x"), "a.jpg", "", "photo", "graduation", "u-owner"); err == nil {
		t.Fatal("expected error for category outside the fixed set")
	}
	if _, err := svc.Upload(context.Background(), strings.NewReader("x"), "a.jpg", "", "gif", domain.CategoryWedding, "u-owner"); err == nil {
		t.Fatal("expected error for invalid media type")
	}
}
