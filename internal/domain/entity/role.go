// Package entity contains the core business objects of the project.
package entity

import "time"

// Role groups the permissions and visible modules of a set of users.
// Users hold a non-owning foreign key to their role; roles are managed
// independently.
type Role struct {
	ID             int64
	Name           string
	NormalizedName string
	Permissions    []Permission // Stored as a JSON document on the role row.
	Modules        []Module     // Stored as a JSON document on the role row.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Permission is a single named capability granted to a role.
type Permission struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Normalized string `json:"normalized"`
	Type       string `json:"type"`
	Status     string `json:"status"`
}

// Module is an application area a role may see.
type Module struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
