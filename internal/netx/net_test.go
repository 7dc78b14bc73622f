package netx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostOctetStream(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xFE, 0xFF}

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT string
		var gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = body
			_, _ = w.Write([]byte("reply"))
		}))
		defer ts.Close()

		resp, err := PostOctetStream(context.Background(), ts.Client(), ts.URL+"/enrollment/enroll2.htm", payload)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/octet-stream", gotCT)
		assert.True(t, bytes.Equal(gotBody, payload), "body = %x, want %x", gotBody, payload)
		assert.Equal(t, []byte("reply"), resp)
	})

	t.Run("non-200 -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("nope"))
		}))
		defer ts.Close()

		_, err := PostOctetStream(context.Background(), nil, ts.URL, payload)
		require.Error(t, err)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusForbidden, se.Code)
		assert.Equal(t, []byte("nope"), se.Body)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, err := PostOctetStream(context.Background(), nil, ts.URL, payload)
		require.Error(t, err)

		var se *StatusError
		assert.False(t, errors.As(err, &se), "got wrong kind of error: %v", err)
	})

	t.Run("context deadline", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(io.Discard, r.Body)
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := PostOctetStream(ctx, nil, ts.URL, payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
