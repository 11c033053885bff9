package repos

import (
	"satyaphoto/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InquiryRepo struct{ db *sqlx.DB }

func NewInquiryRepo(db *sqlx.DB) *InquiryRepo { return &InquiryRepo{db: db} }

// List returns inquiries newest-first. Inquiries have no delete path.
func (r *InquiryRepo) List() ([]domain.InquiryRecord, error) {
	out := []domain.InquiryRecord{}
	err := r.db.Select(&out, `
	  SELECT id, name, email, phone, event_type, event_date, COALESCE(message,'') AS message, submitted_at
	  FROM inquiries
	  ORDER BY submitted_at DESC, id DESC
	`)
	return out, err
}

func (r *InquiryRepo) Insert(q domain.InquiryRecord) error {
	_, err := r.db.Exec(`
	  INSERT INTO inquiries(id,name,email,phone,event_type,event_date,message,submitted_at)
	  VALUES(?,?,?,?,?,?,?,?)
	`, q.ID, q.Name, q.Email, q.Phone, q.EventType, q.EventDate, q.Message, q.SubmittedAt)
	return err
}

// ReplaceAll swaps the entire inquiry collection in one transaction.
func (r *InquiryRepo) ReplaceAll(items []domain.InquiryRecord) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM inquiries`); err != nil {
		return err
	}
	for _, q := range items {
		if _, err := tx.Exec(`
		  INSERT INTO inquiries(id,name,email,phone,event_type,event_date,message,submitted_at)
		  VALUES(?,?,?,?,?,?,?,?)
		`, q.ID, q.Name, q.Email, q.Phone, q.EventType, q.EventDate, q.Message, q.SubmittedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *InquiryRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM inquiries`)
	return n, err
}
