package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/georgemunganga/reqres-users/internal/client"
	"github.com/georgemunganga/reqres-users/internal/modules/status"
)

const seedUserCount = 12

var environments = map[string]string{
	"dev":  "http://127.0.0.1:80",
	"beta": "http://127.0.0.1:8001",
	"rc":   "http://127.0.0.1:8000",
}

func resolveBase(env, explicit string) (string, error) {
	if s := strings.TrimSpace(explicit); s != "" {
		return s, nil
	}
	base, ok := environments[env]
	if !ok {
		return "", fmt.Errorf("unknown env %q, want one of dev, beta, rc", env)
	}
	return base, nil
}

// run checks that the service is up with its store reachable and that a
// seeded user can be read back.
func run(ctx context.Context, api *client.Client, userID int64, log *slog.Logger) error {
	st, err := api.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if !st.Database {
		return fmt.Errorf("status: database unreachable")
	}
	if st.Status != status.Message {
		return fmt.Errorf("status: unexpected message %q", st.Status)
	}
	log.InfoContext(ctx, "status ok")

	u, err := api.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", userID, err)
	}
	if u.Data == nil || u.Data.ID != userID {
		return fmt.Errorf("get user %d: unexpected payload", userID)
	}
	log.InfoContext(ctx, "user ok", "user_id", userID)
	return nil
}
