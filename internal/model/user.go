package model

type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password" json:"-"` // bcrypt hash, never the plaintext
	Username  string  `db:"username"`
	AvatarURL *string `db:"avatar_url"`
}

// Sanitized returns a copy with the password hash blanked, safe to hand
// to the GraphQL layer.
func (u *User) Sanitized() *User {
	clean := *u
	clean.Password = ""
	return &clean
}
