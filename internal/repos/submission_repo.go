package repos

import (
	"sbsoverseas/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SubmissionRepo struct{ db *sqlx.DB }

func NewSubmissionRepo(db *sqlx.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// table picks the collection by the type discriminator: orders get their own
// table, everything else lands with the contact inquiries.
func table(subType string) string {
	if subType == domain.SubmissionOrder {
		return "order_submissions"
	}
	return "contact_submissions"
}

// Save appends a submission. The caller assigns id, type, and timestamp.
func (r *SubmissionRepo) Save(s domain.Submission) error {
	_, err := r.db.Exec(`
	  INSERT INTO `+table(s.Type)+`
	    (id, type, name, email, message, phone, company, rice_type, quantity, created_at)
	  VALUES
	    (?,  ?,    ?,    ?,     ?,       ?,     ?,       ?,         ?,        ?)
	`, s.ID, s.Type, s.Name, s.Email, s.Message, s.Phone, s.Company, s.RiceType, s.Quantity, s.CreatedAt)
	return err
}

// List returns every submission of the given type, newest first.
func (r *SubmissionRepo) List(subType string) ([]domain.Submission, error) {
	var out []domain.Submission
	err := r.db.Select(&out, `
		SELECT id, type, name, email, message, phone, company, rice_type, quantity, created_at
		FROM `+table(subType)+`
		ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}

func (r *SubmissionRepo) DeleteByID(id, subType string) error {
	_, err := r.db.Exec(`DELETE FROM `+table(subType)+` WHERE id = ?`, id)
	return err
}

func (r *SubmissionRepo) Count(subType string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM `+table(subType))
	return n, err
}
