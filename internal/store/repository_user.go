package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It works against the "users" table on both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser persists a new user and returns it with the store-assigned
// UserID and CreatedAt.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	// postgres keeps microseconds; truncating makes the returned value match
	// what a later read yields
	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	err := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail returns the user with exactly the given email.
// No match → [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.findOne(ctx, findUserByEmail, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
	}

	return user, err
}

// FindUserByID returns the user with the given id.
// No match → [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := r.findOne(ctx, findUserByID, userID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user")
	}

	return user, err
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User

	err := r.db.withReadRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, arg).
			Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every stored user ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withReadRetry(ctx, func(ctx context.Context) error {
		users, err = r.queryUsers(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of update and returns the stored
// user after the change. The UPDATE and the re-read run in one transaction.
//
// Error handling:
//   - no row with update.UserID → [ErrUserNotFound].
//   - email taken by another user → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Logger()

	if update.IsEmpty() {
		return r.FindUserByID(ctx, update.UserID)
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Msg("error executing update")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("error reading affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	err = tx.QueryRowContext(ctx, findUserByID, update.UserID).
		Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		log.Err(err).Msg("error reading updated user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// DeleteUser removes the user with the given id.
// No row deleted → [ErrUserNotFound].
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
