package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/reqres-users/internal/client"
	"github.com/georgemunganga/reqres-users/internal/logging"
)

func TestResolveBase(t *testing.T) {
	for env, want := range map[string]string{
		"dev":  "http://127.0.0.1:80",
		"beta": "http://127.0.0.1:8001",
		"rc":   "http://127.0.0.1:8000",
	} {
		got, err := resolveBase(env, "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := resolveBase("prod", "http://example.test")
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", got)

	_, err = resolveBase("prod", "")
	assert.Error(t, err)
}

func fakeService(statusBody string, userCode int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/status" {
			_, _ = io.WriteString(w, statusBody)
			return
		}
		w.WriteHeader(userCode)
		if userCode == http.StatusOK {
			_, _ = io.WriteString(w, `{"data":{"id":7,"first_name":"Michael"},"support":{"url":"u","text":"t"}}`)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	}))
}

func runAgainst(t *testing.T, srv *httptest.Server) error {
	t.Helper()
	api, err := client.New(srv.URL)
	require.NoError(t, err)
	return run(context.Background(), api, 7, logging.Discard())
}

func TestRun(t *testing.T) {
	srv := fakeService(`{"database":true,"status":"App run successful"}`, http.StatusOK)
	defer srv.Close()
	assert.NoError(t, runAgainst(t, srv))
}

func TestRun_DatabaseDown(t *testing.T) {
	srv := fakeService(`{"database":false,"status":"App run successful"}`, http.StatusOK)
	defer srv.Close()
	assert.ErrorContains(t, runAgainst(t, srv), "database unreachable")
}

func TestRun_UserMissing(t *testing.T) {
	srv := fakeService(`{"database":true,"status":"App run successful"}`, http.StatusNotFound)
	defer srv.Close()
	assert.ErrorContains(t, runAgainst(t, srv), "get user 7")
}
