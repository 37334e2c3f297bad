package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE id = $1;`
)

// psql is the statement builder configured for PostgreSQL's $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListOrdersQuery builds the SELECT that lists a user's orders.
// Ordering by id preserves insertion order, which is the order the API
// promises to its callers.
func buildListOrdersQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "item", "quantity", "price_cents", "created_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
}
