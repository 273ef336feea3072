package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEventUpdateQuery(t *testing.T) {
	sql, args, err := buildEventUpdateQuery(5, map[string]interface{}{
		"location": "Lab 204",
		"title":    "Hack Night v2",
	})
	require.NoError(t, err)

	// Columns are applied in a fixed order regardless of map iteration.
	assert.Equal(t, "UPDATE events SET title = $1, location = $2 WHERE id = $3", sql)
	assert.Equal(t, []interface{}{"Hack Night v2", "Lab 204", int64(5)}, args)
}

func TestBuildEventUpdateQueryIgnoresUnknownColumns(t *testing.T) {
	sql, args, err := buildEventUpdateQuery(5, map[string]interface{}{
		"status":     "Completed",
		"created_by": int64(99),
	})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE events SET status = $1 WHERE id = $2", sql)
	assert.Equal(t, []interface{}{"Completed", int64(5)}, args)
}
