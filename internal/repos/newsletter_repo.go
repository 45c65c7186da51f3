package repos

import (
	"sbsoverseas/internal/domain"

	"github.com/jmoiron/sqlx"
)

type NewsletterRepo struct{ db *sqlx.DB }

func NewNewsletterRepo(db *sqlx.DB) *NewsletterRepo { return &NewsletterRepo{db: db} }

// Subscribe records an email. Re-subscribing the same address is a no-op.
func (r *NewsletterRepo) Subscribe(email string) error {
	_, err := r.db.Exec(`INSERT INTO newsletter_signups(email,created_at)
		VALUES(?,CURRENT_TIMESTAMP)
		ON CONFLICT(email) DO NOTHING`, email)
	return err
}

func (r *NewsletterRepo) List() ([]domain.NewsletterSignup, error) {
	var out []domain.NewsletterSignup
	err := r.db.Select(&out, `SELECT email, created_at FROM newsletter_signups ORDER BY datetime(created_at) DESC, email`)
	return out, err
}
