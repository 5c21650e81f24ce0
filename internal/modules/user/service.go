package user

import (
	"context"
	"errors"

	"github.com/georgemunganga/reqres-users/internal/pagination"
)

// ErrInvalidID is returned for ids below 1, which can never exist.
var ErrInvalidID = errors.New("invalid user id")

// Service defines the interface for user-related business logic.
type Service interface {
	// ListUsers returns one page of users in ascending id order.
	ListUsers(ctx context.Context, p pagination.Params) (pagination.Page[*User], error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, req CreateRequest) (*User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context, p pagination.Params) (pagination.Page[*User], error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Page[*User]{}, err
	}
	items := []*User{}
	if !p.PastEnd(total) {
		items, err = s.repo.List(ctx, p.Limit(), p.Offset())
		if err != nil {
			return pagination.Page[*User]{}, err
		}
	}
	return pagination.New(items, p, int(total)), nil
}

func (s *service) GetUser(ctx context.Context, id int64) (*User, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *service) CreateUser(ctx context.Context, req CreateRequest) (*User, error) {
	return s.repo.Insert(ctx, newFromCreate(req))
}

func (s *service) UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*User, error) {
	return s.repo.Update(ctx, id, UpdateParams{
		FirstName: &req.Name,
		Job:       &req.Job,
	})
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
