package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the bootstrap admin exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Identity accounts
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Profile documents, one per account. is_admin gates the admin surface.
CREATE TABLE IF NOT EXISTS profiles(
  user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL DEFAULT '',
  is_admin INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Form submissions. Orders and inquiries live in separate tables, picked by
-- the submission's type discriminator.
CREATE TABLE IF NOT EXISTS contact_submissions(
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL DEFAULT 'contact',
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  company TEXT NOT NULL DEFAULT '',
  rice_type TEXT NOT NULL DEFAULT '',
  quantity TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_contact_submissions_created ON contact_submissions(created_at);

CREATE TABLE IF NOT EXISTS order_submissions(
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL DEFAULT 'order',
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  company TEXT NOT NULL DEFAULT '',
  rice_type TEXT NOT NULL DEFAULT '',
  quantity TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_order_submissions_created ON order_submissions(created_at);

-- Newsletter signups, keyed by email so re-subscribing is a no-op.
CREATE TABLE IF NOT EXISTS newsletter_signups(
  email TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// seedAdmin ensures one administrator account exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM profiles WHERE is_admin = 1`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] creating bootstrap admin account")

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe!1"), 12)
	if err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO users(id,email,password_hash) VALUES('u-admin','admin@sbsoverseas.test',?)
		ON CONFLICT(email) DO NOTHING
	`, string(hash)); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO profiles(user_id,name,is_admin) VALUES('u-admin','Admin',1)
		ON CONFLICT(user_id) DO UPDATE SET is_admin=1
	`); err != nil {
		return err
	}

	return tx.Commit()
}
