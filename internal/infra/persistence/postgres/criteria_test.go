package postgres

import (
	"testing"

	"sphere/internal/domain/entity"
	"sphere/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProbeConditions_EmptyProbeRejected(t *testing.T) {
	tests := []struct {
		name  string
		probe repository.UserProbe
	}{
		{name: "zero value", probe: repository.UserProbe{}},
		{name: "whitespace only", probe: repository.UserProbe{Username: "   ", Name: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds, err := userProbeConditions(tt.probe)

			require.ErrorIs(t, err, repository.ErrEmptyProbe)
			assert.Nil(t, conds)
		})
	}
}

func TestUserProbeConditions_UsernameIsCaseInsensitiveExact(t *testing.T) {
	conds, err := userProbeConditions(repository.UserProbe{Username: "JDoe"})

	require.NoError(t, err)
	require.Len(t, conds, 1)
	assert.Equal(t, "LOWER(username) = ?", conds[0].expr)
	assert.Equal(t, []any{"jdoe"}, conds[0].args)
}

func TestUserProbeConditions_NameFieldsAreSubstringMatches(t *testing.T) {
	conds, err := userProbeConditions(repository.UserProbe{Name: "Ann", LastName: "Smith"})

	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, "LOWER(name) LIKE ?", conds[0].expr)
	assert.Equal(t, []any{"%ann%"}, conds[0].args)
	assert.Equal(t, "LOWER(last_name) LIKE ?", conds[1].expr)
	assert.Equal(t, []any{"%smith%"}, conds[1].args)
}

func TestUserProbeConditions_ExactFields(t *testing.T) {
	conds, err := userProbeConditions(repository.UserProbe{
		ID:       5,
		Status:   entity.StatusActive,
		Verified: "Y",
		RoleID:   2,
	})

	require.NoError(t, err)
	require.Len(t, conds, 4)
	assert.Equal(t, "id = ?", conds[0].expr)
	assert.Equal(t, []any{int64(5)}, conds[0].args)
	assert.Equal(t, "status = ?", conds[1].expr)
	assert.Equal(t, []any{"Active"}, conds[1].args)
	assert.Equal(t, "verified = ?", conds[2].expr)
	assert.Equal(t, "role_id = ?", conds[3].expr)
	assert.Equal(t, []any{int64(2)}, conds[3].args)
}

func TestUserProbeConditions_PresentFieldsAccumulate(t *testing.T) {
	probe := repository.UserProbe{
		Username: "jdoe",
		Name:     "John",
		Status:   entity.StatusInactive,
	}

	conds, err := userProbeConditions(probe)

	require.NoError(t, err)
	// One predicate per present field, combined with AND by the caller.
	assert.Len(t, conds, 3)
}

func TestRoleProbeConditions(t *testing.T) {
	t.Run("empty probe rejected", func(t *testing.T) {
		conds, err := roleProbeConditions(repository.RoleProbe{})

		require.ErrorIs(t, err, repository.ErrEmptyProbe)
		assert.Nil(t, conds)
	})

	t.Run("name is case-insensitive exact", func(t *testing.T) {
		conds, err := roleProbeConditions(repository.RoleProbe{Name: "Admin"})

		require.NoError(t, err)
		require.Len(t, conds, 1)
		assert.Equal(t, "LOWER(name) = ?", conds[0].expr)
		assert.Equal(t, []any{"admin"}, conds[0].args)
	})

	t.Run("id and name combine", func(t *testing.T) {
		conds, err := roleProbeConditions(repository.RoleProbe{ID: 1, Name: "Admin"})

		require.NoError(t, err)
		assert.Len(t, conds, 2)
	})
}
