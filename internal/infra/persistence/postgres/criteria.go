// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"strings"

	"sphere/internal/domain/repository"

	"gorm.io/gorm"
)

// condition is a single SQL predicate with its arguments. A probe becomes a
// list of conditions combined with AND; an empty list is rejected before any
// query is issued.
type condition struct {
	expr string
	args []any
}

// userProbeConditions translates a UserProbe into its predicate list.
// Field semantics: identity and enumerated fields match exactly, username
// matches case-insensitively, free-text name fields match as
// case-insensitive substrings. Absent fields impose no constraint.
func userProbeConditions(probe repository.UserProbe) ([]condition, error) {
	var conds []condition

	if probe.ID > 0 {
		conds = append(conds, condition{"id = ?", []any{probe.ID}})
	}
	if username := strings.TrimSpace(probe.Username); username != "" {
		conds = append(conds, condition{"LOWER(username) = ?", []any{strings.ToLower(username)}})
	}
	if name := strings.TrimSpace(probe.Name); name != "" {
		conds = append(conds, condition{"LOWER(name) LIKE ?", []any{"%" + strings.ToLower(name) + "%"}})
	}
	if lastName := strings.TrimSpace(probe.LastName); lastName != "" {
		conds = append(conds, condition{"LOWER(last_name) LIKE ?", []any{"%" + strings.ToLower(lastName) + "%"}})
	}
	if probe.Status != "" {
		conds = append(conds, condition{"status = ?", []any{probe.Status.String()}})
	}
	if verified := strings.TrimSpace(probe.Verified); verified != "" {
		conds = append(conds, condition{"verified = ?", []any{verified}})
	}
	if probe.RoleID > 0 {
		conds = append(conds, condition{"role_id = ?", []any{probe.RoleID}})
	}

	if len(conds) == 0 {
		return nil, repository.ErrEmptyProbe
	}

	return conds, nil
}

// roleProbeConditions translates a RoleProbe into its predicate list.
func roleProbeConditions(probe repository.RoleProbe) ([]condition, error) {
	var conds []condition

	if probe.ID > 0 {
		conds = append(conds, condition{"id = ?", []any{probe.ID}})
	}
	if name := strings.TrimSpace(probe.Name); name != "" {
		conds = append(conds, condition{"LOWER(name) = ?", []any{strings.ToLower(name)}})
	}

	if len(conds) == 0 {
		return nil, repository.ErrEmptyProbe
	}

	return conds, nil
}

// applyConditions chains every predicate onto the query; GORM combines
// successive Where calls with AND.
func applyConditions(tx *gorm.DB, conds []condition) *gorm.DB {
	for _, cond := range conds {
		tx = tx.Where(cond.expr, cond.args...)
	}

	return tx
}
