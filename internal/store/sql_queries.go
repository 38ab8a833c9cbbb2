package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/models"
)

// Placeholders are kept in ascending order of appearance: SQLite numbers
// "$N" parameters by first occurrence, not by N.
const (
	createUser = `INSERT INTO users (email, password_hash, created_at)
    VALUES ($1, $2, $3)
    RETURNING id;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at"}

	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// buildListUsersQuery builds the SELECT over all users ordered by id.
func buildListUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

// buildUpdateUserQuery builds an UPDATE that touches only the non-nil fields
// of update.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	query := psql.Update(models.User{}.TableName())

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}

	if update.PasswordHash != nil {
		query = query.Set("password_hash", *update.PasswordHash)
	}

	return query.Where(sq.Eq{"id": update.UserID}).ToSql()
}
