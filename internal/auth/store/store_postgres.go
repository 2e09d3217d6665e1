package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"campusconnect/internal/auth/models"
	"campusconnect/pkg/platform/sentinel"
)

// PostgresUserStore persists the credential directory in the users table.
// Selected when DATABASE_URL is configured; the schema mirrors the memory
// store's shape with a unique constraint on email.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

const uniqueViolation = "23505"

func (s *PostgresUserStore) Save(ctx context.Context, cred *models.Credential) error {
	query := `
		INSERT INTO users (id, name, email, avatar, role, college, department, year, secret_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		cred.User.ID,
		cred.User.Name,
		cred.User.Email,
		cred.User.Avatar,
		string(cred.User.Role),
		cred.User.College,
		cred.User.Department,
		cred.User.Year,
		cred.SecretHash,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	return s.findOne(ctx, `WHERE email = $1`, email)
}

func (s *PostgresUserStore) FindByID(ctx context.Context, id string) (*models.Credential, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

func (s *PostgresUserStore) findOne(ctx context.Context, where string, arg any) (*models.Credential, error) {
	query := `
		SELECT id, name, email, avatar, role, college, department, year, secret_hash
		FROM users ` + where
	row := s.db.QueryRowContext(ctx, query, arg)

	var cred models.Credential
	var role string
	err := row.Scan(
		&cred.User.ID,
		&cred.User.Name,
		&cred.User.Email,
		&cred.User.Avatar,
		&role,
		&cred.User.College,
		&cred.User.Department,
		&cred.User.Year,
		&cred.SecretHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	cred.User.Role = models.Role(role)
	return &cred, nil
}

func (s *PostgresUserStore) UpdateUser(ctx context.Context, user models.User) error {
	query := `
		UPDATE users
		SET name = $2, avatar = $3, college = $4, department = $5, year = $6
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Avatar, user.College, user.Department, user.Year,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
