package users

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/formhub/internal/common"
	"github.com/dmitrijs2005/formhub/internal/server/auth"
	"github.com/dmitrijs2005/formhub/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newTestService(repo Repository) *Service {
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewService(repo, cfg)
}

type fakeRepo struct {
	mu    sync.Mutex
	users map[string]*User // keyed by email
	next  int

	createErr error
	getErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}}
}

func (f *fakeRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.next++
	u.ID = "u-" + strconv.Itoa(f.next)
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// --- Register ---

func TestRegister_ValidationErrors(t *testing.T) {
	s := newTestService(newFakeRepo())
	ctx := context.Background()

	tests := []struct {
		name                       string
		uname, email, passwd, role string
	}{
		{"missing name", "", "a@x.com", "pw", "admin"},
		{"missing email", "Alice", "", "pw", "admin"},
		{"missing password", "Alice", "a@x.com", "", "admin"},
		{"missing role", "Alice", "a@x.com", "pw", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.uname, tt.email, tt.passwd, tt.role)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestRegister_Success_HashesPassword(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)

	u, err := s.Register(context.Background(), "Alice", "a@x.com", "pw123456", RoleAdmin)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.NotEqual(t, "pw123456", u.PasswordHash, "plaintext must never be persisted")
	assert.True(t, auth.CheckPassword("pw123456", u.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw123456", RoleAdmin)
	require.NoError(t, err)

	_, err = s.Register(ctx, "Impostor", "a@x.com", "other", RoleUser)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_ConcurrentSameEmail_ExactlyOneSuccess(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	ctx := context.Background()

	const n = 10
	results := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Register(ctx, "Alice", "same@x.com", "pw123456", RoleAdmin)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, dup int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorAlreadyExists):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactly one signup must win")
	assert.Equal(t, n-1, dup)
}

// --- Login ---

func TestLogin_Validation(t *testing.T) {
	s := newTestService(newFakeRepo())
	ctx := context.Background()

	_, _, err := s.Login(ctx, "", "pw")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, _, err = s.Login(ctx, "a@x.com", "")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_UserNotFound(t *testing.T) {
	s := newTestService(newFakeRepo())

	_, _, err := s.Login(context.Background(), "ghost@x.com", "pw123456")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	ctx := context.Background()

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw123456", RoleAdmin)
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "a@x.com", "pw123457")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_Success_IssuesVerifiableToken(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)
	ctx := context.Background()

	created, err := s.Register(ctx, "Alice", "a@x.com", "pw123456", RoleAdmin)
	require.NoError(t, err)

	token, role, err := s.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	claims, err := auth.ParseToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLogin_RepoFailure_IsInternal(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("db down")
	s := newTestService(repo)

	_, _, err := s.Login(context.Background(), "a@x.com", "pw123456")
	require.ErrorIs(t, err, common.ErrorInternal)
}
