package domain

const (
	SubmissionContact = "contact"
	SubmissionOrder   = "order"
)

// Submission is a contact or order form entry. Order submissions carry the
// optional trade fields; contact submissions leave them empty.
type Submission struct {
	ID        string `db:"id" json:"id"`
	Type      string `db:"type" json:"type"` // contact | order
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Message   string `db:"message" json:"message"`
	Phone     string `db:"phone" json:"phone,omitempty"`
	Company   string `db:"company" json:"company,omitempty"`
	RiceType  string `db:"rice_type" json:"riceType,omitempty"`
	Quantity  string `db:"quantity" json:"quantity,omitempty"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type NewsletterSignup struct {
	Email     string `db:"email" json:"email"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}
