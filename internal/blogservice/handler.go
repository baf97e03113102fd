package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogsite/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreatePostRequest struct {
	Title       string
	Content     string
	Category    string
	UserID      int
	CreatorName string
}

type UpdatePostRequest struct {
	ID          int
	Title       string
	Content     string
	Category    string
	UserID      int
	CreatorName string
}

// ListPosts returns every post, newest first.
func (s *BlogService) ListPosts(ctx context.Context) ([]Post, error) {
	return s.m.getAll(ctx)
}

// GetPost returns a post by its ID.
func (s *BlogService) GetPost(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByID(ctx, id)
}

// GetPostForOwner returns the post only if userID created it, ErrForbidden otherwise.
func (s *BlogService) GetPostForOwner(ctx context.Context, id, userID int) (*Post, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.CreatorUserID != userID {
		return nil, ErrForbidden
	}

	return p, nil
}

// CreatePost stores a new post stamped with the current server time.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	validateCategory(v, req.Category)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p := Post{
		CreatorUserID: req.UserID,
		CreatorName:   req.CreatorName,
		Title:         req.Title,
		Body:          req.Content,
		Category:      req.Category,
	}

	err := s.m.insert(ctx, &p)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdatePost overwrites a post and refreshes its timestamp. Only the creator can update it.
func (s *BlogService) UpdatePost(ctx context.Context, req *UpdatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	validateCategory(v, req.Category)
	validateInt(v, req.ID, "id")
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p := Post{
		ID:          req.ID,
		CreatorName: req.CreatorName,
		Title:       req.Title,
		Body:        req.Content,
		Category:    req.Category,
	}

	err := s.m.update(ctx, &p, req.UserID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// DeletePost deletes a post. Only the creator can delete it.
func (s *BlogService) DeletePost(ctx context.Context, id, userID int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, id, userID)
}
