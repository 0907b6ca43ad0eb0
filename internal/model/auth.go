package model

// AuthPayload is the transient result of a successful sign-in. It is never
// persisted; the embedded user has its password hash blanked.
type AuthPayload struct {
	Token string
	User  *User
}
