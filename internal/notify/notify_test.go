package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	err   error
	calls int
}

func (s *stubTransport) Send(context.Context, string) error {
	s.calls++
	return s.err
}

func TestChainStopsAtFirstSuccess(t *testing.T) {
	first := &stubTransport{}
	second := &stubTransport{}

	c := &Chain{Transports: []Notifier{first, second}}
	require.NoError(t, c.Send(context.Background(), "hi"))

	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls, "fallback only fires when the preferred transport fails")
}

func TestChainFallsThroughOnFailure(t *testing.T) {
	first := &stubTransport{err: errors.New("unavailable")}
	second := &stubTransport{}

	c := &Chain{Transports: []Notifier{first, second}}
	require.NoError(t, c.Send(context.Background(), "hi"))
	assert.Equal(t, 1, second.calls)
}

func TestChainSwallowsTotalFailure(t *testing.T) {
	c := &Chain{Transports: []Notifier{
		&stubTransport{err: errors.New("a")},
		&stubTransport{err: errors.New("b")},
	}}
	assert.NoError(t, c.Send(context.Background(), "hi"), "notification failure never surfaces")
}

func TestTelegramSend(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegramWithBase(srv.Client(), srv.URL, "tok123", "chat42")
	require.NoError(t, tg.Send(context.Background(), "New job: SWE @ Acme"))

	assert.Equal(t, "/bottok123/sendMessage", gotPath)
	assert.Equal(t, "chat42", gotBody["chat_id"])
	assert.Equal(t, "New job: SWE @ Acme", gotBody["text"])
	assert.Equal(t, true, gotBody["disable_web_page_preview"])
}

func TestTelegramUnconfigured(t *testing.T) {
	tg := NewTelegram("", "")
	assert.Error(t, tg.Send(context.Background(), "x"))
}

func TestTelegramErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegramWithBase(srv.Client(), srv.URL, "tok", "chat")
	assert.Error(t, tg.Send(context.Background(), "x"))
}

func TestIMessageUnavailableOffDarwin(t *testing.T) {
	m := &IMessage{}
	assert.Error(t, m.Send(context.Background(), "x"), "no recipient means the chain moves on")
}
