package ports

import (
	"context"
	"errors"
	"strconv"

	"github.com/dkeysil/channel-registry-bot/internal/domain"
	"github.com/dkeysil/channel-registry-bot/internal/metrics"
)

const (
	noChannelsMessage = "No channels available for subscription yet."

	chooseChannelMessage = "Select a channel to subscribe:"

	alreadySubscribedAck = "You're already subscribed to this channel!"
)

// OfferChannels lists every registered channel as a selectable option.
func (p *TelegramPort) OfferChannels(ctx context.Context) (Reply, error) {
	channelIDs, err := p.store.ListChannelIDs(ctx)
	if err != nil {
		return Reply{}, err
	}

	if len(channelIDs) == 0 {
		return Reply{Text: noChannelsMessage}, nil
	}

	options := make([]Option, 0, len(channelIDs))
	for _, channelID := range channelIDs {
		options = append(options, Option{
			Label: channelID,
			Token: subscribePrefix + channelID,
		})
	}

	return Reply{Text: chooseChannelMessage, Options: options}, nil
}

// HandleSubscription records userID's subscription to channelID and returns
// the acknowledgment text for the originating selection.
func (p *TelegramPort) HandleSubscription(ctx context.Context, channelID string, userID int64) (string, error) {
	err := p.store.InsertSubscription(ctx, domain.Subscription{
		UserID:    strconv.FormatInt(userID, 10),
		ChannelID: channelID,
	})
	if errors.Is(err, domain.ErrDuplicateKey) {
		metrics.IncSubscription("duplicate")
		return alreadySubscribedAck, nil
	}
	if err != nil {
		return "", err
	}

	metrics.IncSubscription("subscribed")
	return "Successfully subscribed to " + channelID, nil
}
