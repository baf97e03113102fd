package userservice

import (
	"database/sql"
	"time"
)

type UserService struct {
	m *UserModel
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
