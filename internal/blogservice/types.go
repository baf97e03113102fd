package blogservice

import (
	"database/sql"
	"time"
)

type Post struct {
	ID            int       `json:"blog_id"`
	CreatorUserID int       `json:"creator_user_id"`
	CreatorName   string    `json:"creator_name"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	DateCreated   time.Time `json:"date_created"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
