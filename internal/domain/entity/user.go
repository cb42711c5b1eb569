// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the credential record for an account: the identity fields, the
// salted password hash, the account status and a non-owning reference to
// the account's role.
type User struct {
	ID           int64     // Store-assigned identity, immutable after creation.
	Username     string    // Unique login name, compared case-insensitively everywhere.
	Name         string    // Given name, used as the display name in issued tokens.
	LastName     string    // Family name.
	PasswordHash string    // Opaque base64(salt||key) produced only by the PasswordHasher. Never logged, never serialized out.
	Status       Status    // Account state; login is refused unless Active.
	Verified     string    // Verification flag carried from provisioning ("Y"/"N").
	RoleID       int64     // Foreign key to the Role entity.
	Role         *Role     // Eager-loaded role reference, needed for the token's role claim.
	CreatedAt    time.Time // Set once at creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// RoleName returns the name of the user's role, or a safe default when the
// role reference was not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return "User"
	}

	return u.Role.Name
}
