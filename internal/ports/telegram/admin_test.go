package ports

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testBotID int64 = 42

type fakeMemberGetter struct {
	statuses map[int64]string
	err      error
}

func (f *fakeMemberGetter) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}
	return tgbotapi.ChatMember{Status: f.statuses[config.UserID]}, nil
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		userStatus string
		botStatus  string
		want       bool
	}{
		{name: "user creator, bot admin", userStatus: "creator", botStatus: "administrator", want: true},
		{name: "user admin, bot admin", userStatus: "administrator", botStatus: "administrator", want: true},
		{name: "user member", userStatus: "member", botStatus: "administrator", want: false},
		{name: "user left", userStatus: "left", botStatus: "administrator", want: false},
		{name: "bot not admin", userStatus: "creator", botStatus: "member", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getter := &fakeMemberGetter{statuses: map[int64]string{
				1:         tt.userStatus,
				testBotID: tt.botStatus,
			}}
			verifier := NewAdminVerifier(getter, testBotID, zap.NewNop())

			assert.Equal(t, tt.want, verifier.Verify("@news", 1))
		})
	}
}

func TestVerifyLookupFailure(t *testing.T) {
	getter := &fakeMemberGetter{err: errors.New("chat not found")}
	verifier := NewAdminVerifier(getter, testBotID, zap.NewNop())

	assert.False(t, verifier.Verify("@missing", 1), "lookup failure degrades to not authorized")
}
