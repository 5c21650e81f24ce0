package user

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/reqres-users/internal/pagination"
)

// memoryRepo is an in-memory Repository for service and handler tests.
type memoryRepo struct {
	mu       sync.Mutex
	next     int64
	users    map[int64]*User
	err      error
	listCall int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: map[int64]*User{}}
}

func (m *memoryRepo) ordered() []*User {
	out := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryRepo) Get(_ context.Context, id int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryRepo) List(_ context.Context, limit, offset int) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCall++
	if m.err != nil {
		return nil, m.err
	}
	return pagination.Slice(m.ordered(), pagination.Params{Page: offset/limit + 1, Size: limit}), nil
}

func (m *memoryRepo) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.users)), nil
}

func (m *memoryRepo) Insert(_ context.Context, u *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.next++
	cp := *u
	cp.ID = m.next
	m.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, p UpdateParams) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.Job != nil {
		u.Job = *p.Job
	}
	cp := *u
	return &cp, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryRepo) MaxID(context.Context) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max int64
	for id := range m.users {
		if id > max {
			max = id
		}
	}
	return max, len(m.users) > 0, m.err
}

func seededService(t *testing.T, n int) (Service, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	for i := 0; i < n; i++ {
		_, err := repo.Insert(context.Background(), &User{FirstName: "user"})
		require.NoError(t, err)
	}
	return NewService(repo), repo
}

func TestServiceListUsers(t *testing.T) {
	svc, _ := seededService(t, 17)
	ctx := context.Background()

	page, err := svc.ListUsers(ctx, pagination.Params{Page: 1, Size: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, 17, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(1), page.Items[0].ID)

	page, err = svc.ListUsers(ctx, pagination.Params{Page: 3, Size: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(13), page.Items[0].ID)
}

func TestServiceListUsers_PastTheEndSkipsList(t *testing.T) {
	svc, repo := seededService(t, 4)

	page, err := svc.ListUsers(context.Background(), pagination.Params{Page: 5, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Zero(t, repo.listCall)
}

func TestServiceListUsers_HugePageIsPastTheEnd(t *testing.T) {
	svc, repo := seededService(t, 12)

	page, err := svc.ListUsers(context.Background(), pagination.Params{Page: 288230376151711745, Size: 64})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Zero(t, repo.listCall)
}

func TestServiceListUsers_Empty(t *testing.T) {
	svc, _ := seededService(t, 0)

	page, err := svc.ListUsers(context.Background(), pagination.Default())
	require.NoError(t, err)
	assert.Equal(t, pagination.EmptyPages, page.Pages)
	assert.Equal(t, 0, page.Total)
}

func TestServiceGetUser(t *testing.T) {
	svc, _ := seededService(t, 2)
	ctx := context.Background()

	for _, id := range []int64{0, -1} {
		_, err := svc.GetUser(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidID)
	}

	_, err := svc.GetUser(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := svc.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
}

func TestServiceCreateUser_MapsRequest(t *testing.T) {
	svc, repo := seededService(t, 0)

	u, err := svc.CreateUser(context.Background(), CreateRequest{Name: "Max", Job: "qa-manual"})
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, FirstName: "Max", Job: "qa-manual"}, u)
	assert.Len(t, repo.users, 1)
}

func TestServiceUpdateUser_TouchesOnlyNameAndJob(t *testing.T) {
	repo := newMemoryRepo()
	orig, err := repo.Insert(context.Background(), &User{
		Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt", Avatar: "a.jpg", Job: "x",
	})
	require.NoError(t, err)
	svc := NewService(repo)

	u, err := svc.UpdateUser(context.Background(), orig.ID, UpdateRequest{Name: "Nikolay", Job: "Super PM"})
	require.NoError(t, err)
	assert.Equal(t, &User{
		ID: orig.ID, Email: "eve.holt@reqres.in", FirstName: "Nikolay", LastName: "Holt", Avatar: "a.jpg", Job: "Super PM",
	}, u)

	_, err = svc.UpdateUser(context.Background(), orig.ID+1, UpdateRequest{Name: "a", Job: "b"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceDeleteUser(t *testing.T) {
	svc, _ := seededService(t, 1)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteUser(ctx, 0), ErrInvalidID)
	assert.NoError(t, svc.DeleteUser(ctx, 1))
	assert.ErrorIs(t, svc.DeleteUser(ctx, 1), ErrNotFound)
}

func TestServicePropagatesStoreErrors(t *testing.T) {
	svc, repo := seededService(t, 1)
	repo.err = errors.New("db down")
	ctx := context.Background()

	_, err := svc.ListUsers(ctx, pagination.Default())
	assert.EqualError(t, err, "db down")
	_, err = svc.GetUser(ctx, 1)
	assert.EqualError(t, err, "db down")
	_, err = svc.CreateUser(ctx, CreateRequest{})
	assert.EqualError(t, err, "db down")
	assert.EqualError(t, svc.DeleteUser(ctx, 1), "db down")
}
