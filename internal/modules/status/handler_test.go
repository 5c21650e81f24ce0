package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/reqres-users/internal/logging"
)

func getStatus(t *testing.T, ping Pinger) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(ping, logging.Discard()).RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	return rec
}

func TestStatus_DatabaseUp(t *testing.T) {
	rec := getStatus(t, func(context.Context) error { return nil })

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"database":true,"status":"App run successful"}`, rec.Body.String())
}

func TestStatus_DatabaseDownStill200(t *testing.T) {
	rec := getStatus(t, func(context.Context) error { return errors.New("connection refused") })

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"database":false,"status":"App run successful"}`, rec.Body.String())
}

func TestStatus_NoPinger(t *testing.T) {
	rec := getStatus(t, nil)
	assert.JSONEq(t, `{"database":false,"status":"App run successful"}`, rec.Body.String())
}

func TestCheck_BoundsProbe(t *testing.T) {
	h := NewHandler(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.LessOrEqual(t, time.Until(deadline), checkTimeout)
		<-ctx.Done()
		return ctx.Err()
	}, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st := h.Check(ctx)
	assert.False(t, st.Database)
	assert.Equal(t, Message, st.Status)
}
