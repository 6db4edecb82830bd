package oauth

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/chargecli/internal/common"
)

func TestParseCallback_Success(t *testing.T) {
	params := url.Values{}
	params.Set("token", "tok-1")
	params.Set("user", url.QueryEscape(`{"id":"u1","name":"Alice","email":"user@x.com","role":"user"}`))

	res, err := ParseCallback(params)
	require.NoError(t, err)
	assert.False(t, res.Failed())
	assert.Equal(t, "tok-1", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "Alice", res.User.Name)
}

func TestParseCallback_ProviderError(t *testing.T) {
	params := url.Values{}
	params.Set("error", "access_denied")
	params.Set("error_description", "user refused consent")

	res, err := ParseCallback(params)
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.False(t, res.Blocked())
	assert.Equal(t, "user refused consent", res.ErrDescription)
}

func TestParseCallback_BlockedAccount(t *testing.T) {
	params := url.Values{}
	params.Set("error", "account_blocked")

	res, err := ParseCallback(params)
	require.NoError(t, err)
	assert.True(t, res.Failed())
	assert.True(t, res.Blocked())
	assert.Equal(t, "Authentication failed", res.ErrDescription)
}

func TestParseCallback_BlockedByDescription(t *testing.T) {
	params := url.Values{}
	params.Set("error", "forbidden")
	params.Set("error_description", "account is blocked")

	res, err := ParseCallback(params)
	require.NoError(t, err)
	assert.True(t, res.Blocked())
}

func TestParseCallback_MissingParams(t *testing.T) {
	for _, params := range []url.Values{
		{},
		{"token": {"tok-1"}},
		{"user": {"{}"}},
	} {
		_, err := ParseCallback(params)
		require.ErrorIs(t, err, common.ErrCallbackMalformed)
	}
}

func TestParseCallback_UndecodableUser(t *testing.T) {
	params := url.Values{}
	params.Set("token", "tok-1")
	params.Set("user", "not-json")

	_, err := ParseCallback(params)
	require.ErrorIs(t, err, common.ErrCallbackMalformed)
}

func TestCallbackServer_CatchesFirstRedirect(t *testing.T) {
	s, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer s.Close()

	resp, err := http.Get("http://" + s.Addr() + "/callback?token=tok-1&user=%7B%22id%22%3A%22u1%22%7D")
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	values, err := s.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", values.Get("token"))
}

func TestCallbackServer_WaitHonorsContext(t *testing.T) {
	s, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
