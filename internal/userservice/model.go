package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogsite/internal/common"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrNotFound      = errors.New("user not found")
)

const nameConstraint = "users_name_key"

func NewUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (name, password)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, u.Name, u.Password.hash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, nameConstraint):
			return ErrDuplicateName
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByName(ctx context.Context, name string) (*User, error) {
	query := `
		SELECT id, name, password, created_at
		FROM users
		WHERE name = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, name).Scan(&u.ID, &u.Name, &u.Password.hash, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

// update overwrites both the name and the password hash of the user.
func (m *UserModel) update(ctx context.Context, u *User) error {
	query := `
		UPDATE users
		SET name = $1, password = $2
		WHERE id = $3
		RETURNING created_at`

	err := m.db.QueryRowContext(ctx, query, u.Name, u.Password.hash, u.ID).Scan(&u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNotFound
		case common.UniqueViolation(err, nameConstraint):
			return ErrDuplicateName
		default:
			return err
		}
	}

	return nil
}
