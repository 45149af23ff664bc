package ports

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ChatMemberGetter interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type AdminVerifier struct {
	bot    ChatMemberGetter
	botID  int64
	logger *zap.Logger
}

func NewAdminVerifier(bot ChatMemberGetter, botID int64, logger *zap.Logger) *AdminVerifier {
	return &AdminVerifier{
		bot:    bot,
		botID:  botID,
		logger: logger,
	}
}

// Verify reports whether userID may register channelUsername. The user must
// be creator or administrator of the channel, and the bot itself must be an
// administrator there. A failed membership lookup counts as not authorized.
func (v *AdminVerifier) Verify(channelUsername string, userID int64) bool {
	userMember, err := v.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channelUsername,
			UserID:             userID,
		},
	})
	if err != nil {
		v.logger.Error(
			"failed to get user membership",
			zap.Error(err),
			zap.String("channel", channelUsername),
			zap.Int64("user_id", userID),
		)
		return false
	}

	if userMember.Status != "creator" && userMember.Status != "administrator" {
		return false
	}

	botMember, err := v.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channelUsername,
			UserID:             v.botID,
		},
	})
	if err != nil {
		v.logger.Error(
			"failed to get bot membership",
			zap.Error(err),
			zap.String("channel", channelUsername),
		)
		return false
	}

	return botMember.Status == "administrator"
}
