package entity

import "time"

// User is an account that can sign in, review products and own a store.
type User struct {
	ID        int64     // Application identifier assigned on insert.
	Name      string    // Display name shown next to reviews.
	Secret    string    // Stored credential, clear text or a bcrypt hash.
	Email     string    // Login identifier, unique after normalization.
	Phone     string    // Contact phone.
	RoleID    int       // Raw role identifier as stored.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Role classifies the stored role identifier.
func (u *User) Role() Role {
	return RoleFromID(u.RoleID)
}

// UserPatch carries the optional fields of a partial user update.
type UserPatch struct {
	Name  *string
	Phone *string
	Email *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil
}
