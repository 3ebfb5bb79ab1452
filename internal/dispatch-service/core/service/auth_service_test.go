package service_test

import (
	"context"
	"sync"
	"testing"

	"cargo-dispatch/internal/dispatch-service/core/domain/dto"
	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/service"
	"cargo-dispatch/internal/mylogger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Login]; ok {
		return 0, myerrors.ErrLoginTaken
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Login] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByLogin(_ context.Context, login string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[login]
	if !ok {
		return models.User{}, myerrors.ErrInvalidCredentials
	}
	return user, nil
}

func newAuthService(t *testing.T, repo *fakeUserRepo) (*service.AuthService, *service.TokenService) {
	t.Helper()

	mylog, err := mylogger.New("test", mylogger.LevelError)
	require.NoError(t, err)

	tokens, err := service.NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	return service.NewAuthService(repo, service.NewHasher(), tokens, mylog), tokens
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	as, tokens := newAuthService(t, repo)

	res, err := as.Register(context.Background(), dto.UserRequest{Login: "driver1", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, "driver1", res.UserLogin)
	assert.Equal(t, "bearer", res.TokenType)

	// The issued token must carry the new user's identity.
	claims, err := tokens.Validate(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "driver1", claims.Login)

	// The stored hash must not be the plaintext.
	user, err := repo.GetByLogin(context.Background(), "driver1")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("pass1"), user.PasswordHash)
	assert.Equal(t, models.RoleDriver, user.Role)
}

func TestAuthService_RegisterDuplicateLogin(t *testing.T) {
	t.Parallel()

	as, _ := newAuthService(t, newFakeUserRepo())

	_, err := as.Register(context.Background(), dto.UserRequest{Login: "driver1", Password: "pass1"})
	require.NoError(t, err)

	_, err = as.Register(context.Background(), dto.UserRequest{Login: "driver1", Password: "other"})
	assert.ErrorIs(t, err, myerrors.ErrLoginTaken)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	as, _ := newAuthService(t, newFakeUserRepo())

	tests := []struct {
		name    string
		req     dto.UserRequest
		wantErr error
	}{
		{"short login", dto.UserRequest{Login: "abcd", Password: "pass1"}, myerrors.ErrInvalidLogin},
		{"short password", dto.UserRequest{Login: "driver1", Password: "abcd"}, myerrors.ErrInvalidPassword},
		{"long password", dto.UserRequest{Login: "driver1", Password: "abcdefghijklmnopqrstuvwxyz"}, myerrors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := as.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	as, tokens := newAuthService(t, newFakeUserRepo())

	_, err := as.Register(context.Background(), dto.UserRequest{Login: "driver1", Password: "pass1"})
	require.NoError(t, err)

	res, err := as.Login(context.Background(), dto.UserRequest{Login: "driver1", Password: "pass1"})
	require.NoError(t, err)

	claims, err := tokens.Validate(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "driver1", claims.Login)
}

func TestAuthService_LoginFailuresIndistinct(t *testing.T) {
	t.Parallel()

	as, _ := newAuthService(t, newFakeUserRepo())

	_, err := as.Register(context.Background(), dto.UserRequest{Login: "driver1", Password: "pass1"})
	require.NoError(t, err)

	// Unknown login and wrong password must surface as the same error,
	// leaking nothing about which one failed.
	_, unknownErr := as.Login(context.Background(), dto.UserRequest{Login: "nosuch", Password: "pass1"})
	_, wrongErr := as.Login(context.Background(), dto.UserRequest{Login: "driver1", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, myerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, myerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
