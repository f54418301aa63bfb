package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/birthdaywisher/backend/api/v1/models"
)

var (
	ErrEmailExists   = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user does not exist")
	ErrDatabaseError = errors.New("database error occurred")
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

func CreateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	insertQuery := `
		INSERT INTO users (id, username, email, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := pool.Exec(ctx, insertQuery,
		user.ID,
		user.Username,
		user.Email,
		user.DateOfBirth,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email '%s' is already registered", ErrEmailExists, user.Email)
		}
		fmt.Printf("Database error during user creation: %v\n", err)
		return fmt.Errorf("%w: failed to create user", ErrDatabaseError)
	}

	return nil
}

func GetUser(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID, user *models.User) error {
	getQuery := `
		SELECT id, username, email, date_of_birth, created_at
		FROM users
		WHERE id = $1`

	err := pool.QueryRow(ctx, getQuery, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.DateOfBirth,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: no user with ID %s", ErrUserNotFound, userID)
		}
		fmt.Printf("Database error retrieving user %s: %v\n", userID, err)
		return fmt.Errorf("%w: failed to retrieve user", ErrDatabaseError)
	}

	return nil
}

func GetUsers(ctx context.Context, pool *pgxpool.Pool) ([]models.User, error) {
	dataQuery := `
		SELECT id, username, email, date_of_birth, created_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, dataQuery)
	if err != nil {
		fmt.Printf("Database error getting users: %v\n", err)
		return nil, fmt.Errorf("%w: failed to get users", ErrDatabaseError)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.DateOfBirth, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan user row", ErrDatabaseError)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		fmt.Printf("Database error iterating users: %v\n", err)
		return nil, fmt.Errorf("%w: failed to iterate users", ErrDatabaseError)
	}

	return users, nil
}

func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID) error {
	deleteQuery := `DELETE FROM users WHERE id = $1`

	tag, err := pool.Exec(ctx, deleteQuery, userID)
	if err != nil {
		fmt.Printf("Database error deleting user %s: %v\n", userID, err)
		return fmt.Errorf("%w: failed to delete user", ErrDatabaseError)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no user with ID %s", ErrUserNotFound, userID)
	}

	return nil
}

// IsEmailExistsError checks if the error indicates a duplicate email
func IsEmailExistsError(err error) bool {
	return errors.Is(err, ErrEmailExists)
}

// IsUserNotFoundError checks if the error indicates a missing user
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// Store wraps a pool so callers can depend on a narrow interface
// instead of the pool itself.
type Store struct {
	Pool *pgxpool.Pool
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return CreateUser(ctx, s.Pool, user)
}

func (s *Store) GetUser(ctx context.Context, userID uuid.UUID, user *models.User) error {
	return GetUser(ctx, s.Pool, userID, user)
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	return GetUsers(ctx, s.Pool)
}

func (s *Store) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return DeleteUser(ctx, s.Pool, userID)
}
