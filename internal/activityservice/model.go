package activityservice

import (
	"context"
	"database/sql"
)

func newActivityModel(db *sql.DB) *ActivityModel {
	return &ActivityModel{db: db}
}

func (m *ActivityModel) insert(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO activities (user_id, kind, blog_id, title, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := m.db.ExecContext(ctx, query, e.UserID, string(e.Kind), e.BlogID, e.Title, e.OccurredAt)
	return err
}

func (m *ActivityModel) getRecentByUser(ctx context.Context, userID, limit int) ([]Activity, error) {
	query := `
		SELECT id, user_id, kind, blog_id, title, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := m.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var (
			a      Activity
			blogID sql.NullInt64
		)
		err := rows.Scan(&a.ID, &a.UserID, &a.Kind, &blogID, &a.Title, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		if blogID.Valid {
			id := int(blogID.Int64)
			a.BlogID = &id
		}

		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
