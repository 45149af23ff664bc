package domain

import "errors"

// ErrDuplicateKey is returned by the store when an insert violates a
// primary-key constraint.
var ErrDuplicateKey = errors.New("duplicate key")

type Channel struct {
	ID              string `db:"channel_id"`
	AddedBy         string `db:"added_by"`
	ContractAddress string `db:"contract_address"`
}

type Subscription struct {
	UserID    string `db:"user_id"`
	ChannelID string `db:"channel_id"`
}
