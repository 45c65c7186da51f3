package repos

import (
	"database/sql"
	"errors"

	"sbsoverseas/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,password_hash FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts an account and its profile document in one transaction.
// New profiles always start without the admin flag.
func (r *UserRepo) Create(id, email, hash, name string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO users(id,email,password_hash) VALUES(?,?,?)`, id, email, hash); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO profiles(user_id,name,is_admin) VALUES(?,?,0)`, id, name); err != nil {
		return err
	}
	return tx.Commit()
}

// Profile returns the user's profile document, or sql.ErrNoRows if the row
// is missing (older accounts; sign-in self-heals it).
func (r *UserRepo) Profile(userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.DB.Get(&p, `SELECT user_id,name,is_admin FROM profiles WHERE user_id=?`, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// EnsureProfile creates a default non-admin profile when none exists.
func (r *UserRepo) EnsureProfile(userID, name string) (*domain.Profile, error) {
	p, err := r.Profile(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := r.DB.Exec(`INSERT INTO profiles(user_id,name,is_admin) VALUES(?,?,0)
		ON CONFLICT(user_id) DO NOTHING`, userID, name); err != nil {
		return nil, err
	}
	return r.Profile(userID)
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.password_hash
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}

// ListProfiles returns every account with its profile, for the admin user
// page. Accounts without a profile row show with defaults.
type UserRow struct {
	ID      string `db:"id"`
	Email   string `db:"email"`
	Name    string `db:"name"`
	IsAdmin bool   `db:"is_admin"`
}

func (r *UserRepo) ListProfiles() ([]UserRow, error) {
	var out []UserRow
	err := r.DB.Select(&out, `
		SELECT u.id, u.email, COALESCE(p.name,'') AS name, COALESCE(p.is_admin,0) AS is_admin
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		ORDER BY u.email`)
	return out, err
}

// DeleteUserCascade removes a user, their profile, and their sessions.
func (r *UserRepo) DeleteUserCascade(userID string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM sessions WHERE user_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM profiles WHERE user_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM users WHERE id=?`, userID); err != nil {
		return err
	}

	return tx.Commit()
}
