package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
	// getByEmailHook runs after the lookup, simulating a concurrent insert.
	getByEmailHook func()
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.Lock()
	var found *user.User
	for _, u := range r.users {
		if u.Email == email {
			u := u
			found = &u
		}
	}
	hook := r.getByEmailHook
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	if found == nil {
		return user.User{}, user.ErrUserNotFound
	}
	return *found, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	if newUser.ManagerID != nil {
		if _, ok := r.users[*newUser.ManagerID]; !ok {
			return user.User{}, user.ErrManagerNotFound
		}
	}
	newUser.ID = uuid.NewString()
	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *fakeUserRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetPositionForUpdate(ctx context.Context, id string) (*string, error) {
	u, err := r.GetByID(ctx, id)
	return u.Position, err
}

func (r *fakeUserRepo) UpdatePosition(ctx context.Context, id string, position string) error {
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, mustReset bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.MustResetPassword = mustReset
	r.users[id] = u
	return nil
}

type storedToken struct {
	userID  string
	revoked bool
}

type fakeJWTRepo struct {
	mu     sync.Mutex
	tokens map[string]*storedToken
}

var _ postgresql.JWTRepository = (*fakeJWTRepo)(nil)

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{tokens: map[string]*storedToken{}}
}

func (r *fakeJWTRepo) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[postgresql.HashToken(token)] = &storedToken{userID: userID}
	return nil
}

func (r *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[postgresql.HashToken(token)]
	if !ok {
		return "", false, auth.ErrInvalidToken
	}
	return t.userID, t.revoked, nil
}

func (r *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[postgresql.HashToken(token)]; ok {
		t.revoked = true
	}
	return nil
}

func (r *fakeJWTRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}
