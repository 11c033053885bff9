package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"satyaphoto/internal/domain"
	"satyaphoto/internal/mediastore"
	"satyaphoto/internal/repos"
)

// CatalogService is the single source of truth for the media catalog.
// Raw bytes live in the blob store; rows reference them as /media/<key> URLs.
type CatalogService struct {
	Media *repos.MediaRepo
	Blobs mediastore.Store
}

func NewCatalogService(media *repos.MediaRepo, blobs mediastore.Store) *CatalogService {
	return &CatalogService{Media: media, Blobs: blobs}
}

// GetAllMedia returns the catalog newest-first; empty catalog yields [].
func (s *CatalogService) GetAllMedia() ([]domain.MediaItem, error) {
	return s.Media.List()
}

// GetMediaFiltered applies a category filter; "all" returns the full catalog.
func (s *CatalogService) GetMediaFiltered(category string) ([]domain.MediaItem, error) {
	if category == "" || category == "all" {
		return s.Media.List()
	}
	return s.Media.ListByCategory(category)
}

// SetAllMedia replaces the whole catalog in a single transaction.
func (s *CatalogService) SetAllMedia(items []domain.MediaItem) error {
	return s.Media.ReplaceAll(items)
}

// AddMedia inserts one item, filling id and timestamp when the caller left
// them blank.
func (s *CatalogService) AddMedia(m domain.MediaItem) (domain.MediaItem, error) {
	if m.ID == "" {
		m.ID = newMediaID()
	}
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if !domain.ValidCategory(m.Category) {
		return domain.MediaItem{}, fmt.Errorf("invalid service category %q", m.Category)
	}
	if err := s.Media.Insert(m); err != nil {
		return domain.MediaItem{}, err
	}
	return m, nil
}

// DeleteMedia removes the catalog row and, for uploaded files, the stored
// bytes. A missing id is a no-op; blob removal is best-effort.
func (s *CatalogService) DeleteMedia(ctx context.Context, id string) error {
	m, err := s.Media.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		// Absent id: nothing to do.
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.Media.Delete(id); err != nil {
		return err
	}
	if key, ok := strings.CutPrefix(m.URL, "/media/"); ok && s.Blobs != nil {
		_ = s.Blobs.Delete(ctx, key)
	}
	return nil
}

// Counts returns per-category item counts plus the full total under "all".
func (s *CatalogService) Counts() (map[string]int, error) {
	rows, err := s.Media.CountsByCategory()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{"all": 0}
	for _, c := range domain.ServiceCategories {
		counts[c.Value] = 0
	}
	for _, r := range rows {
		counts[r.Category] = r.Count
		counts["all"] += r.Count
	}
	return counts, nil
}

// Upload ingests a local file: stores the bytes and prepends a new item to
// the catalog. Title defaults to the file's own name when left blank.
func (s *CatalogService) Upload(ctx context.Context, r io.Reader, filename, title, mediaType, category, uploaderID string) (domain.MediaItem, error) {
	if !domain.ValidCategory(category) {
		return domain.MediaItem{}, fmt.Errorf("invalid service category %q", category)
	}
	if mediaType != "photo" && mediaType != "video" {
		return domain.MediaItem{}, fmt.Errorf("invalid media type %q", mediaType)
	}

	mimeType := mediastore.ExtToMimeType(filename)
	key, err := s.Blobs.Save(ctx, category, mimeType, r)
	if err != nil {
		return domain.MediaItem{}, fmt.Errorf("store upload: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		title = filename
	}
	m := domain.MediaItem{
		ID:         newMediaID(),
		Title:      title,
		Type:       mediaType,
		Category:   category,
		URL:        "/media/" + key,
		UploadedBy: uploaderID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Media.Insert(m); err != nil {
		_ = s.Blobs.Delete(ctx, key)
		return domain.MediaItem{}, err
	}
	return m, nil
}

// Search matches media titles, optionally within one category.
func (s *CatalogService) Search(q, category string, page, pageSize int) ([]domain.MediaItem, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.Media.Search(strings.ToLower(q), category, pageSize, offset)
}

// newMediaID derives an id from the creation instant, like the ids the site
// has always produced. Nanosecond resolution keeps sequential inserts unique;
// the primary key rejects the pathological collision.
func newMediaID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
