package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/blogsite/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrForbidden      = errors.New("post belongs to another user")
	ErrUserForeignKey = errors.New("creator_user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO blogs (creator_user_id, creator_name, title, body, category, date_created)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING blog_id, date_created`

	err := m.db.QueryRowContext(ctx, query, p.CreatorUserID, p.CreatorName, p.Title, p.Body, p.Category).Scan(&p.ID, &p.DateCreated)
	if err != nil {
		switch {
		case common.ForeignKeyViolation(err, "blogs_creator_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) getByID(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT blog_id, creator_user_id, creator_name, title, body, category, date_created
		FROM blogs
		WHERE blog_id = $1`

	var p Post
	err := m.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CreatorUserID, &p.CreatorName, &p.Title, &p.Body, &p.Category, &p.DateCreated)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

// getAll returns every post, newest first. blog_id breaks ties between posts created in the same instant.
func (m *BlogModel) getAll(ctx context.Context) ([]Post, error) {
	query := `
		SELECT blog_id, creator_user_id, creator_name, title, body, category, date_created
		FROM blogs
		ORDER BY date_created DESC, blog_id DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		err := rows.Scan(&p.ID, &p.CreatorUserID, &p.CreatorName, &p.Title, &p.Body, &p.Category, &p.DateCreated)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// update rewrites the post only when userID owns it. date_created never moves backwards.
func (m *BlogModel) update(ctx context.Context, p *Post, userID int) error {
	query := `
		UPDATE blogs
		SET title = $1, body = $2, category = $3, creator_name = $4, date_created = GREATEST(NOW(), date_created)
		WHERE blog_id = $5 AND creator_user_id = $6
		RETURNING creator_user_id, date_created`

	err := m.db.QueryRowContext(ctx, query, p.Title, p.Body, p.Category, p.CreatorName, p.ID, userID).Scan(&p.CreatorUserID, &p.DateCreated)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return m.ownershipError(ctx, p.ID)
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) delete(ctx context.Context, id, userID int) error {
	query := `
		DELETE FROM blogs
		WHERE blog_id = $1 AND creator_user_id = $2`

	res, err := m.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return m.ownershipError(ctx, id)
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// ownershipError explains why a conditional write touched no rows.
func (m *BlogModel) ownershipError(ctx context.Context, id int) error {
	_, err := m.getByID(ctx, id)
	if err != nil {
		return err
	}

	return ErrForbidden
}
