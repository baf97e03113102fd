package activityservice

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/blogsite/internal/common"
)

type Kind string

const (
	KindSignedUp       Kind = "user.signed_up"
	KindAccountUpdated Kind = "account.updated"
	KindPostCreated    Kind = "post.created"
	KindPostUpdated    Kind = "post.updated"
	KindPostDeleted    Kind = "post.deleted"
)

// Event is the message published on the activity exchange.
type Event struct {
	Kind       Kind      `json:"kind"`
	UserID     int       `json:"user_id"`
	BlogID     *int      `json:"blog_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Activity struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Kind      Kind      `json:"kind"`
	BlogID    *int      `json:"blog_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityModel struct {
	db *sql.DB
}

type ActivityService struct {
	m      *ActivityModel
	mp     common.MessageProducer
	mc     common.MessageConsumer
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}
