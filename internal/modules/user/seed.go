package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

var seedNames = [][2]string{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// SeedUsers returns the canonical reqres users in id order. On an empty
// table they are assigned ids 1..12.
func SeedUsers() []*User {
	users := make([]*User, 0, len(seedNames))
	for i, n := range seedNames {
		users = append(users, &User{
			Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(n[0]), strings.ToLower(n[1])),
			FirstName: n[0],
			LastName:  n[1],
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", i+1),
		})
	}
	return users
}

// Seed inserts SeedUsers when the table is empty and reports how many rows
// it wrote. A populated table is left alone.
func Seed(ctx context.Context, repo Repository, log *slog.Logger) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.InfoContext(ctx, "users table already populated, skipping seed", "count", n)
		return 0, nil
	}
	inserted := 0
	for _, u := range SeedUsers() {
		if _, err := repo.Insert(ctx, u); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", u.Email, err)
		}
		inserted++
	}
	log.InfoContext(ctx, "seeded users", "count", inserted)
	return inserted, nil
}
