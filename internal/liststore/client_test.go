package liststore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelight/outreach/internal/liststore"
)

func TestMutate_Success(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","message":"added"}`))
	}))
	defer srv.Close()

	c := liststore.NewHTTPClient(srv.URL, srv.Client())
	result, err := c.Mutate(context.Background(), liststore.ActionAdd, "Ada", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, liststore.ResultSuccess, result.Result)
	assert.Equal(t, "added", result.Message)

	assert.Equal(t, "Ada", got["name"])
	assert.Equal(t, "ada@example.com", got["email"])
	assert.Equal(t, "add", got["action"])
}

func TestMutate_ResultCodes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "duplicate", body: `{"result":"duplicate"}`, want: liststore.ResultDuplicate},
		{name: "not found", body: `{"result":"not_found"}`, want: liststore.ResultNotFound},
		{name: "unrecognized code carried through", body: `{"result":"ok"}`, want: "ok"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := liststore.NewHTTPClient(srv.URL, srv.Client())
			result, err := c.Mutate(context.Background(), liststore.ActionRemove, "", "ada@example.com")
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Result)
		})
	}
}

func TestMutate_HTMLBodyIsMalformed(t *testing.T) {
	// The known upstream failure mode: an HTML error page under a 200 status.
	tests := []struct {
		name string
		body string
	}{
		{name: "doctype", body: "<!DOCTYPE html><html><body>Script error</body></html>"},
		{name: "html tag", body: "<html><head></head></html>"},
		{name: "fragment", body: "  <div>oops</div>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := liststore.NewHTTPClient(srv.URL, srv.Client())
			_, err := c.Mutate(context.Background(), liststore.ActionAdd, "Ada", "ada@example.com")

			var malformed *liststore.MalformedError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestMutate_InvalidJSONIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := liststore.NewHTTPClient(srv.URL, srv.Client())
	_, err := c.Mutate(context.Background(), liststore.ActionAdd, "Ada", "ada@example.com")

	var malformed *liststore.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestMutate_TransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := liststore.NewHTTPClient(srv.URL, nil)
	_, err := c.Mutate(context.Background(), liststore.ActionAdd, "Ada", "ada@example.com")

	var unreachable *liststore.UnreachableError
	require.ErrorAs(t, err, &unreachable)
}
