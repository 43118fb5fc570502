package twitch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenGrant(t *testing.T) {
	var gotForm map[string][]string
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		io.WriteString(w, `{"access_token": "app-token-1", "expires_in": 5011271}`)
	}))
	defer auth.Close()

	var gotAuthHeader string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthHeader = r.Header.Get("Authorization")
		io.WriteString(w, `{"data": [{"id": "123", "type": "highlight"}]}`)
	}))
	defer api.Close()

	client := NewClient("client-id", "client-secret", WithAuthURL(auth.URL), WithAPIURL(api.URL))
	require.NoError(t, client.RefreshToken(context.Background()))

	assert.Equal(t, []string{"client-id"}, gotForm["client_id"])
	assert.Equal(t, []string{"client-secret"}, gotForm["client_secret"])
	assert.Equal(t, []string{"client_credentials"}, gotForm["grant_type"])

	// The refreshed token is used as bearer on lookups.
	_, _, err := client.Video(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer app-token-1", gotAuthHeader)
}

func TestRefreshTokenAuthError(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer auth.Close()

	client := NewClient("client-id", "bad-secret", WithAuthURL(auth.URL))
	err := client.RefreshToken(context.Background())

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusForbidden, ae.StatusCode)
	assert.Contains(t, ae.Error(), "token refresh")
}

func TestRefreshTokenEmptyGrant(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer auth.Close()

	client := NewClient("client-id", "client-secret", WithAuthURL(auth.URL))
	assert.True(t, IsAuthError(client.RefreshToken(context.Background())))
}

func TestVideoLookup(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123456", r.URL.Query().Get("id"))
		assert.Equal(t, "client-id", r.Header.Get("Client-Id"))
		io.WriteString(w, `{"data": [{"id": "123456", "type": "archive"}]}`)
	}))
	defer api.Close()

	client := NewClient("client-id", "client-secret", WithAPIURL(api.URL))
	video, found, err := client.Video(context.Background(), "123456")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Video{ID: "123456", Type: "archive"}, video)
}

func TestVideoNotFound(t *testing.T) {
	t.Run("404 answer", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer api.Close()

		client := NewClient("client-id", "client-secret", WithAPIURL(api.URL))
		_, found, err := client.Video(context.Background(), "999999")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty data envelope", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"data": []}`)
		}))
		defer api.Close()

		client := NewClient("client-id", "client-secret", WithAPIURL(api.URL))
		_, found, err := client.Video(context.Background(), "999999")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestVideoAuthError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer api.Close()

	client := NewClient("client-id", "client-secret", WithAPIURL(api.URL))
	_, _, err := client.Video(context.Background(), "123456")

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestVideoUnexpectedStatus(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer api.Close()

	client := NewClient("client-id", "client-secret", WithAPIURL(api.URL))
	_, _, err := client.Video(context.Background(), "123456")

	require.Error(t, err)
	assert.False(t, IsAuthError(err))
}
