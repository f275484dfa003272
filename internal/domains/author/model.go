package author

// Author is a persisted author record.
type Author struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Bio   string `json:"bio" db:"bio"`
}
