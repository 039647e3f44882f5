package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

// The upsert must be a single conditional write keyed on the natural key.
// Two concurrent first logins for the same (provider, provider_user_id)
// then resolve inside the database instead of racing a read-then-insert.
func TestUpsertConflictClauseTargetsNaturalKey(t *testing.T) {
	oc := upsertConflictClause()

	require.Len(t, oc.Columns, 2)
	assert.Equal(t, "provider", oc.Columns[0].Name)
	assert.Equal(t, "provider_user_id", oc.Columns[1].Name)
}

func TestUpsertConflictClauseUpdatesMutableFields(t *testing.T) {
	oc := upsertConflictClause()

	var columns []string
	for _, a := range oc.DoUpdates {
		columns = append(columns, a.Column.Name)
	}

	assert.ElementsMatch(t, []string{"name", "email", "profile_picture", "raw_data", "updated_at"}, columns)
	assert.False(t, oc.DoNothing)
	assert.False(t, oc.UpdateAll)
}

func TestUpsertConflictClauseAssignsExcludedValues(t *testing.T) {
	oc := upsertConflictClause()

	for _, a := range oc.DoUpdates {
		v, ok := a.Value.(clause.Column)
		require.True(t, ok)
		assert.Equal(t, "excluded", v.Table)
	}
}
