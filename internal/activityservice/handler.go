package activityservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sushihentaime/blogsite/internal/common"
)

// NewActivityService wires the producer used by Publish and the consumer used by
// RecordActivities. mc may be nil when no broker is configured.
func NewActivityService(db *sql.DB, mp common.MessageProducer, mc common.MessageConsumer, logger *slog.Logger) *ActivityService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ActivityService{
		m:      newActivityModel(db),
		mp:     mp,
		mc:     mc,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Publish sends the event to the activity exchange.
func (s *ActivityService) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return s.mp.Publish(ctx, data, common.ActivityRecordedKey, common.ActivityExchange)
}

// RecentActivity returns the latest activities of a user, newest first.
func (s *ActivityService) RecentActivity(ctx context.Context, userID, limit int) ([]Activity, error) {
	if limit < 1 {
		limit = 10
	}

	return s.m.getRecentByUser(ctx, userID, limit)
}

// RecordActivities consumes the activity queue and stores each event until Close is called.
func (s *ActivityService) RecordActivities() {
	if s.mc == nil {
		return
	}

	msgs, err := s.mc.Consume(common.ActivityRecordedKey, common.ActivityExchange, common.ActivityQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var e Event
				err := json.Unmarshal(msg.Body, &e)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
					msg.Nack(false, false)
					continue
				}

				ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
				err = s.m.insert(ctx, &e)
				cancel()
				if err != nil {
					s.logger.Error("could not record activity", slog.String("kind", string(e.Kind)), slog.Int("user_id", e.UserID), slog.String("error", err.Error()))
					msg.Nack(false, false)
					continue
				}

				msg.Ack(false)

			case <-s.ctx.Done():
				s.logger.Info("stopping RecordActivities due to context cancellation")
				return
			}
		}
	}()
}

func (s *ActivityService) Close() {
	s.cancel()
}
