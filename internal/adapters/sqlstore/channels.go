package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkeysil/channel-registry-bot/internal/domain"
	"github.com/mattn/go-sqlite3"
)

func (s *SqlStore) ListChannelIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := s.db.SelectContext(
		ctx,
		&ids,
		"SELECT channel_id FROM channels",
	)
	return ids, err
}

func (s *SqlStore) ChannelExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.GetContext(
		ctx,
		&count,
		"SELECT COUNT(*) FROM channels WHERE channel_id = $1",
		id,
	)
	return count > 0, err
}

func (s *SqlStore) InsertChannel(ctx context.Context, channel domain.Channel) error {
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO channels (channel_id, added_by, contract_address) VALUES ($1, $2, $3)",
		channel.ID,
		channel.AddedBy,
		channel.ContractAddress,
	)
	return mapConstraintError(err)
}

// mapConstraintError translates sqlite uniqueness violations into
// domain.ErrDuplicateKey so callers never depend on the driver.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	}

	return err
}
