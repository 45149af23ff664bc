package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	pingErr     error
	channels    []string
	subscribers map[string][]string
}

func (f *fakeStore) Ping() error {
	return f.pingErr
}

func (f *fakeStore) ListChannelIDs(ctx context.Context) ([]string, error) {
	return f.channels, nil
}

func (f *fakeStore) ListSubscribers(ctx context.Context, channelID string) ([]string, error) {
	return f.subscribers[channelID], nil
}

func (f *fakeStore) CountSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	for _, subscribers := range f.subscribers {
		count += int64(len(subscribers))
	}
	return count, nil
}

func TestHealthz(t *testing.T) {
	server := NewServer(&fakeStore{}, zap.NewNop())

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatus(t *testing.T) {
	store := &fakeStore{
		channels: []string{"@a", "@b"},
		subscribers: map[string][]string{
			"@a": {"1", "2"},
		},
	}
	server := NewServer(store, zap.NewNop())

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Channels, 2)
	assert.Equal(t, channelStatus{ChannelID: "@a", Subscribers: 2}, resp.Channels[0])
	assert.Equal(t, channelStatus{ChannelID: "@b", Subscribers: 0}, resp.Channels[1])
	assert.EqualValues(t, 2, resp.Subscriptions)
}
