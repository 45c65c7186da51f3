package domain

// User is an identity record. Display data and the admin flag live on the
// separate Profile row, which may be missing for older accounts; sign-in
// recreates it.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Hash  string `db:"password_hash"`
}

type Profile struct {
	UserID  string `db:"user_id" json:"userId"`
	Name    string `db:"name" json:"name"`
	IsAdmin bool   `db:"is_admin" json:"isAdmin"`
}
