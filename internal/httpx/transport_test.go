package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport_SetsRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewTransport(nil)}

	t.Run("generated", func(t *testing.T) {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Len(t, got, 36)
	})

	t.Run("from context", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "req-123")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "req-123", got)
	})
}

func TestAccessLogTransport_PropagatesErrors(t *testing.T) {
	client := &http.Client{Transport: NewTransport(nil)}

	_, err := client.Get("http://127.0.0.1:1/unreachable")
	assert.Error(t, err)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
