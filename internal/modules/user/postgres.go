package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/reqres-users/internal/dbx"
)

// The statements stick to $N placeholders in ascending order and RETURNING,
// which lib/pq, pgx and sqlite3 all accept.
const (
	userColumns = `id, email, first_name, last_name, avatar, job`

	sqlGetUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	sqlListUsers = `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`

	sqlCountUsers = `SELECT COUNT(*) FROM users`

	sqlInsertUser = `INSERT INTO users (email, first_name, last_name, avatar, job)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	sqlDeleteUser = `DELETE FROM users WHERE id = $1`

	sqlMaxUserID = `SELECT MAX(id) FROM users`
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a user repository over a database/sql handle.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func scanUser(scan func(...any) error) (*User, error) {
	u := &User{}
	if err := scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Avatar, &u.Job); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) Get(ctx context.Context, id int64) (*User, error) {
	var u *User
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		u, err = scanUser(tx.QueryRowContext(ctx, sqlGetUser, id).Scan)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]*User, error) {
	users := []*User{}
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := tx.QueryContext(ctx, sqlListUsers, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u, err := scanUser(rows.Scan)
			if err != nil {
				return err
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, sqlCountUsers).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) Insert(ctx context.Context, u *User) (*User, error) {
	created := *u
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, sqlInsertUser,
			u.Email, u.FirstName, u.LastName, u.Avatar, u.Job,
		).Scan(&created.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, p UpdateParams) (*User, error) {
	setClauses := make([]string, 0, 2)
	args := make([]any, 0, 3)
	argIdx := 1

	if p.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *p.FirstName)
		argIdx++
	}
	if p.Job != nil {
		setClauses = append(setClauses, fmt.Sprintf("job = $%d", argIdx))
		args = append(args, *p.Job)
		argIdx++
	}
	if len(setClauses) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argIdx, userColumns)

	var u *User
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		u, err = scanUser(tx.QueryRowContext(ctx, query, args...).Scan)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return u, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, sqlDeleteUser, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (r *postgresRepository) MaxID(ctx context.Context) (int64, bool, error) {
	var max sql.NullInt64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, sqlMaxUserID).Scan(&max)
	})
	if err != nil {
		return 0, false, fmt.Errorf("max user id: %w", err)
	}
	return max.Int64, max.Valid, nil
}
