package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/promptforge/promptforge-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

// UserRepository handles user persistence and login auditing.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// The unique constraints on username and email are the authoritative guard
// against duplicates; a violation maps to ErrDuplicateIdentity.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO registered_users (username, email, password_hash) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateIdentity
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// FindByEmail retrieves a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM registered_users WHERE email = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// FindByEmailOrUsername retrieves a user matching either identity field.
// Used as the fast-path duplicate check during registration.
func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at FROM registered_users
		WHERE email = ? OR username = ? LIMIT 1`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// RecordLoginAttempt appends a row to the login audit trail.
func (r *UserRepository) RecordLoginAttempt(ctx context.Context, userID int64, success bool) error {
	query := `INSERT INTO login_history (user_id, success) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID, success)
	return err
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
