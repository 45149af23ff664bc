package ports

import (
	"context"
	"strings"

	ledger "github.com/dkeysil/channel-registry-bot/internal/adapters/ledger"
	"github.com/dkeysil/channel-registry-bot/internal/domain"
	"github.com/dkeysil/channel-registry-bot/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	WelcomeMessage = "Welcome! Use /add_channel to add your channel or /subscribe to view available channels."

	genericFailureMessage = "Something went wrong, please try again later."

	subscribePrefix = "sub_"
)

type Store interface {
	ListChannelIDs(ctx context.Context) ([]string, error)
	ChannelExists(ctx context.Context, id string) (bool, error)
	InsertChannel(ctx context.Context, channel domain.Channel) error
	InsertSubscription(ctx context.Context, subscription domain.Subscription) error
}

type AdminChecker interface {
	Verify(channelUsername string, userID int64) bool
}

type TelegramPort struct {
	store    Store
	verifier AdminChecker
	ledger   *ledger.Client
	logger   *zap.Logger

	bot     *tgbotapi.BotAPI
	updates tgbotapi.UpdatesChannel
}

func NewTelegramPort(
	bot *tgbotapi.BotAPI,
	store Store,
	verifier AdminChecker,
	ledgerClient *ledger.Client,
	logger *zap.Logger,
) *TelegramPort {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	return &TelegramPort{
		store:    store,
		verifier: verifier,
		ledger:   ledgerClient,
		logger:   logger,

		bot:     bot,
		updates: updates,
	}
}

func (p *TelegramPort) Listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-p.updates:
			if update.CallbackQuery != nil {
				p.handleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message != nil && update.Message.IsCommand() {
				p.handleCommand(ctx, update.Message)
			}
		}
	}
}

func (p *TelegramPort) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	metrics.IncUpdate("command")

	var args []string
	if arguments := message.CommandArguments(); arguments != "" {
		args = strings.Split(arguments, " ")
	}

	var reply Reply
	var err error

	command := message.Command()
	switch command {
	case "start":
		reply = Reply{Text: WelcomeMessage}
	case "add_channel":
		reply, err = p.RegisterChannel(ctx, args, message.From.ID)
	case "subscribe":
		reply, err = p.OfferChannels(ctx)
	default:
		reply = Reply{Text: "Invalid command"}
	}

	if err != nil {
		p.logger.Error(
			"failed to handle command",
			zap.Error(err),
			zap.String("command", command),
			zap.Int64("user_id", message.From.ID),
		)
		reply = Reply{Text: genericFailureMessage}
	}

	p.send(message.Chat.ID, reply)
}

func (p *TelegramPort) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	metrics.IncUpdate("callback")

	if !strings.HasPrefix(query.Data, subscribePrefix) {
		// Unknown token, just stop the client-side spinner.
		p.answer(query.ID, "")
		return
	}

	channelID := strings.TrimPrefix(query.Data, subscribePrefix)

	ack, err := p.HandleSubscription(ctx, channelID, query.From.ID)
	if err != nil {
		p.logger.Error(
			"failed to handle subscription",
			zap.Error(err),
			zap.String("channel_id", channelID),
			zap.Int64("user_id", query.From.ID),
		)
		ack = genericFailureMessage
	}

	p.answer(query.ID, ack)
}

func (p *TelegramPort) send(chatID int64, reply Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.DisableWebPagePreview = reply.DisableWebPreview

	if len(reply.Options) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reply.Options))
		for _, option := range reply.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(option.Label, option.Token),
			))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	if _, err := p.bot.Send(msg); err != nil {
		p.logger.Error("failed to send message", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (p *TelegramPort) answer(callbackID, text string) {
	if _, err := p.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		p.logger.Error("failed to answer callback query", zap.Error(err))
	}
}
