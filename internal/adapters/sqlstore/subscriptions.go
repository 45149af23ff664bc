package sqlstore

import (
	"context"

	"github.com/dkeysil/channel-registry-bot/internal/domain"
)

func (s *SqlStore) InsertSubscription(ctx context.Context, subscription domain.Subscription) error {
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO subscriptions (user_id, channel_id) VALUES ($1, $2)",
		subscription.UserID,
		subscription.ChannelID,
	)
	return mapConstraintError(err)
}

func (s *SqlStore) ListSubscribers(ctx context.Context, channelID string) ([]string, error) {
	userIDs := []string{}
	err := s.db.SelectContext(
		ctx,
		&userIDs,
		"SELECT user_id FROM subscriptions WHERE channel_id = $1",
		channelID,
	)
	return userIDs, err
}

func (s *SqlStore) CountSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(
		ctx,
		&count,
		"SELECT COUNT(*) FROM subscriptions",
	)
	return count, err
}
