package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/blogsite/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid credentials")
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{
		m: NewUserModel(db),
	}
}

// SignUp registers a new user. The name is checked up front for a friendly error,
// but the unique constraint on users.name is what actually guarantees it.
func (s *UserService) SignUp(ctx context.Context, name, password string) (*User, error) {
	v := common.NewValidator()
	validateName(v, name)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	_, err := s.m.getByName(ctx, name)
	switch {
	case err == nil:
		return nil, ErrDuplicateName
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	u := User{Name: name}

	err = u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// SignIn returns the user matching name and password. An unknown name and a wrong
// password both yield ErrAuthenticationFailure.
func (s *UserService) SignIn(ctx context.Context, name, password string) (*User, error) {
	v := common.NewValidator()
	v.Check(name != "", "name", "must be provided")
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u, err := s.m.getByName(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	match, err := u.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !match {
		return nil, ErrAuthenticationFailure
	}

	return u, nil
}

// UpdateAccount overwrites the name and password of the user with the given id.
func (s *UserService) UpdateAccount(ctx context.Context, id int, name, password string) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateName(v, name)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{ID: id, Name: name}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.update(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
