package repos

import (
	"satyaphoto/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MediaRepo struct{ db *sqlx.DB }

func NewMediaRepo(db *sqlx.DB) *MediaRepo { return &MediaRepo{db: db} }

// List returns the whole catalog newest-first. An empty catalog yields an
// empty slice, never a demo set.
func (r *MediaRepo) List() ([]domain.MediaItem, error) {
	out := []domain.MediaItem{}
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(title,'') AS title, type, service_category, url, uploaded_by, created_at
	  FROM media
	  ORDER BY created_at DESC, id DESC
	`)
	return out, err
}

func (r *MediaRepo) ListByCategory(category string) ([]domain.MediaItem, error) {
	out := []domain.MediaItem{}
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(title,'') AS title, type, service_category, url, uploaded_by, created_at
	  FROM media
	  WHERE service_category = ?
	  ORDER BY created_at DESC, id DESC
	`, category)
	return out, err
}

func (r *MediaRepo) Get(id string) (domain.MediaItem, error) {
	var m domain.MediaItem
	err := r.db.Get(&m, `
	  SELECT id, COALESCE(title,'') AS title, type, service_category, url, uploaded_by, created_at
	  FROM media WHERE id = ?
	`, id)
	return m, err
}

// Insert adds a single item. A row-level insert, so concurrent writers cannot
// lose each other's items the way a read-modify-write of the whole list could.
func (r *MediaRepo) Insert(m domain.MediaItem) error {
	_, err := r.db.Exec(`
	  INSERT INTO media(id,title,type,service_category,url,uploaded_by,created_at)
	  VALUES(?,?,?,?,?,?,?)
	`, m.ID, m.Title, m.Type, m.Category, m.URL, m.UploadedBy, m.CreatedAt)
	return err
}

// Delete removes the item with the given id. Deleting an absent id is a no-op.
func (r *MediaRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM media WHERE id = ?`, id)
	return err
}

// ReplaceAll swaps the entire catalog in one transaction.
func (r *MediaRepo) ReplaceAll(items []domain.MediaItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM media`); err != nil {
		return err
	}
	for _, m := range items {
		if _, err := tx.Exec(`
		  INSERT INTO media(id,title,type,service_category,url,uploaded_by,created_at)
		  VALUES(?,?,?,?,?,?,?)
		`, m.ID, m.Title, m.Type, m.Category, m.URL, m.UploadedBy, m.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type CategoryCount struct {
	Category string `db:"service_category"`
	Count    int    `db:"n"`
}

// CountsByCategory returns per-category item counts for the filter buttons.
// Categories with no items are absent from the result.
func (r *MediaRepo) CountsByCategory() ([]CategoryCount, error) {
	out := []CategoryCount{}
	err := r.db.Select(&out, `
	  SELECT service_category, COUNT(*) AS n
	  FROM media
	  GROUP BY service_category
	`)
	return out, err
}

// Search matches media titles for the public search page.
func (r *MediaRepo) Search(q, category string, limit, offset int) ([]domain.MediaItem, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND LOWER(title) LIKE ?`
		args = append(args, "%"+q+"%")
	}
	if category != "" {
		where += ` AND service_category = ?`
		args = append(args, category)
	}
	args = append(args, limit, offset)

	out := []domain.MediaItem{}
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(title,'') AS title, type, service_category, url, uploaded_by, created_at
	  FROM media
	  WHERE `+where+`
	  ORDER BY created_at DESC, id DESC
	  LIMIT ? OFFSET ?
	`, args...)
	return out, err
}
