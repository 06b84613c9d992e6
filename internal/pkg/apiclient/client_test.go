package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGet_SendsAPIKeyAndQuery(t *testing.T) {
	var gotKey, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New("products", srv.URL, "secret-key", time.Second, testLogger())

	q := url.Values{}
	q.Set("page", "2")
	raw, err := c.Get(context.Background(), "/api/products", q)
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "page=2", gotQuery)
	assert.JSONEq(t, `{"data":[]}`, string(raw))
}

func TestGet_OmitsHeaderWithoutKey(t *testing.T) {
	var hasHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["X-Api-Key"]
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New("products", srv.URL, "", time.Second, testLogger())
	_, err := c.Get(context.Background(), "/api/products", nil)
	require.NoError(t, err)
	assert.False(t, hasHeader)
}

func TestPost_EncodesBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New("inventory", srv.URL, "k", time.Second, testLogger())
	_, err := c.Post(context.Background(), "/api/inventory/1/update", map[string]int{"changeQuantity": -2})
	require.NoError(t, err)
	assert.Equal(t, float64(-2), got["changeQuantity"])
}

func TestErrorEnvelope_FirstDetailWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[
			{"status":"404","title":"Not Found","detail":"product 99 does not exist"},
			{"status":"404","title":"Second","detail":"ignored"}
		]}`))
	}))
	defer srv.Close()

	c := New("products", srv.URL, "k", time.Second, testLogger())
	_, err := c.Get(context.Background(), "/api/products/99", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Title)
	assert.Equal(t, "product 99 does not exist", apiErr.Detail)
	assert.True(t, apiErr.NotFound())
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "product 99 does not exist", Message(err))
}

func TestErrorEnvelope_GenericFallback(t *testing.T) {
	for name, body := range map[string]string{
		"empty body":   "",
		"html error":   "<html>502 Bad Gateway</html>",
		"empty errors": `{"errors":[]}`,
		"no detail":    `{"errors":[{"status":"500","title":"Oops","detail":""}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := New("products", srv.URL, "k", time.Second, testLogger())
			_, err := c.Get(context.Background(), "/api/products", nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 500, apiErr.StatusCode)
			assert.Equal(t, genericDetail, Message(err))
		})
	}
}

func TestNetworkError_Classification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New("products", srv.URL, "k", time.Second, testLogger())
	_, err := c.Get(context.Background(), "/api/products", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, netErr.Err)
	assert.Equal(t, "could not reach the service", Message(err))
}

func TestNetworkError_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New("products", srv.URL, "k", 20*time.Millisecond, testLogger())
	_, err := c.Get(context.Background(), "/api/products", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestDelete_NoBody(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New("products", srv.URL, "k", time.Second, testLogger())
	require.NoError(t, c.Delete(context.Background(), "/api/products/3"))
	assert.Equal(t, http.MethodDelete, method)
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
