package models

// User is a marketplace account, keyed by email. Accounts are upserted on
// login so the same document is reused across sessions.
type User struct {
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}
