package ports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dkeysil/channel-registry-bot/internal/domain"
	"github.com/dkeysil/channel-registry-bot/internal/metrics"
)

const (
	usageMessage = "Please provide a channel username (e.g., /add_channel @channel)"

	badHandleMessage = "Channel username must start with @ symbol"

	alreadyRegisteredMessage = "This channel is already in the subscription list!"

	notAdminMessage = "Error: Both you and the bot must be administrators of the channel. " +
		"Please make sure to add the bot as an administrator first!"
)

// RegisterChannel adds the channel named by args to the registry on behalf of
// userID. Every expected failure comes back as reply text; a non-nil error
// means the store itself failed.
func (p *TelegramPort) RegisterChannel(ctx context.Context, args []string, userID int64) (Reply, error) {
	if len(args) == 0 {
		return Reply{Text: usageMessage}, nil
	}

	channelUsername := args[0]
	if !strings.HasPrefix(channelUsername, "@") {
		return Reply{Text: badHandleMessage}, nil
	}

	// Fast path only: the insert below is what actually guarantees
	// uniqueness when two registrations race.
	exists, err := p.store.ChannelExists(ctx, channelUsername)
	if err != nil {
		return Reply{}, err
	}
	if exists {
		metrics.IncRegistration("duplicate")
		return Reply{Text: alreadyRegisteredMessage}, nil
	}

	if !p.verifier.Verify(channelUsername, userID) {
		metrics.IncRegistration("denied")
		return Reply{Text: notAdminMessage}, nil
	}

	err = p.store.InsertChannel(ctx, domain.Channel{
		ID:              channelUsername,
		AddedBy:         strconv.FormatInt(userID, 10),
		ContractAddress: p.ledger.ContractAddress(),
	})
	if errors.Is(err, domain.ErrDuplicateKey) {
		metrics.IncRegistration("duplicate")
		return Reply{Text: alreadyRegisteredMessage}, nil
	}
	if err != nil {
		return Reply{}, err
	}

	metrics.IncRegistration("registered")

	text := fmt.Sprintf(
		"Successfully added channel %s to subscription list!\n\n"+
			"Please complete the registration by interacting with the smart contract:\n%s\n\n"+
			"Once the transaction is confirmed, your channel will be activated for subscriptions.",
		channelUsername,
		p.ledger.ExplorerLink(),
	)

	return Reply{Text: text, DisableWebPreview: true}, nil
}
