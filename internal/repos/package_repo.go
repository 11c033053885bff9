package repos

import (
	"satyaphoto/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PackageRepo struct{ db *sqlx.DB }

func NewPackageRepo(db *sqlx.DB) *PackageRepo { return &PackageRepo{db: db} }

func (r *PackageRepo) List() ([]domain.Package, error) {
	out := []domain.Package{}
	err := r.db.Select(&out, `
	  SELECT id, title, COALESCE(description,'') AS description, price_range,
	         service_category, created_by, created_at
	  FROM packages
	  ORDER BY title
	`)
	return out, err
}

func (r *PackageRepo) ListByCategory(category string) ([]domain.Package, error) {
	out := []domain.Package{}
	err := r.db.Select(&out, `
	  SELECT id, title, COALESCE(description,'') AS description, price_range,
	         service_category, created_by, created_at
	  FROM packages
	  WHERE service_category = ?
	  ORDER BY title
	`, category)
	return out, err
}
