package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListOrdersQuery(t *testing.T) {
	query, args, err := buildListOrdersQuery(42)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, user_id, item, quantity, price_cents, created_at FROM orders WHERE user_id = $1 ORDER BY id ASC",
		query)
	assert.Equal(t, []any{int64(42)}, args)
}
