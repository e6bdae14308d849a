package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerChanPusher_Push(t *testing.T) {
	t.Run("posts title and description as form fields", func(t *testing.T) {
		var gotPath, gotTitle, gotDesp, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotPath = r.URL.Path
			gotTitle = r.PostFormValue("title")
			gotDesp = r.PostFormValue("desp")
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		pusher := NewServerChanPusher(ServerChanConfig{
			BaseURL: server.URL,
			Key:     "SCT123KEY",
		})

		err := pusher.Push(context.Background(), "aster - new ticket opened", "Cannot connect")

		require.NoError(t, err)
		assert.Equal(t, "/SCT123KEY.send", gotPath)
		assert.Equal(t, "aster - new ticket opened", gotTitle)
		assert.Equal(t, "Cannot connect", gotDesp)
		assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	})

	t.Run("trailing slash in base URL is tolerated", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
		}))
		defer server.Close()

		pusher := NewServerChanPusher(ServerChanConfig{
			BaseURL: server.URL + "/",
			Key:     "SCTKEY",
		})

		require.NoError(t, pusher.Push(context.Background(), "t", "d"))
		assert.Equal(t, "/SCTKEY.send", gotPath)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"bad key"}`))
		}))
		defer server.Close()

		pusher := NewServerChanPusher(ServerChanConfig{BaseURL: server.URL, Key: "BADKEY"})

		err := pusher.Push(context.Background(), "t", "d")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "bad key")
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		pusher := NewServerChanPusher(ServerChanConfig{
			BaseURL: server.URL,
			Key:     "SCTKEY",
			Timeout: time.Second,
		})

		err := pusher.Push(context.Background(), "t", "d")
		require.Error(t, err)
	})

	t.Run("context cancellation aborts the push", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer server.Close()

		pusher := NewServerChanPusher(ServerChanConfig{BaseURL: server.URL, Key: "SCTKEY"})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := pusher.Push(ctx, "t", "d")
		require.Error(t, err)
	})
}
