// Package entity contains the core business objects of the project.
package entity

// Status represents the account state of a user.
type Status string

const (
	// StatusActive indicates an account that may log in.
	StatusActive Status = "Active"
	// StatusInactive indicates a disabled account; login is refused.
	StatusInactive Status = "Inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// IsActive reports whether the account may authenticate.
func (s Status) IsActive() bool {
	return s == StatusActive
}
