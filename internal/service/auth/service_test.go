package auth

import (
	"context"
	"testing"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/hrflo/hrflo-backend/internal/pkg/validator"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type testEnv struct {
	svc     auth.AuthService
	users   *fakeUserRepo
	tokens  *fakeJWTRepo
	mock    pgxmock.PgxPoolIface
	session auth.SessionTrackingRequest
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)
	require.NoError(t, err)

	users := newFakeUserRepo()
	tokens := newFakeJWTRepo()
	return &testEnv{
		svc:     NewAuthService(database.New(mock), users, jwtService, tokens),
		users:   users,
		tokens:  tokens,
		mock:    mock,
		session: auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"},
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)

	stored := env.users.users[registered.ID]
	assert.Equal(t, user.RoleEmployee, stored.Role)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.Equal(t, "a", stored.Name)

	resp, err := env.svc.Login(ctx, auth.LoginRequest{Email: "a@x.com", Password: "pw1"}, env.session)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.User.ID)
	assert.Equal(t, "Employee", resp.User.Role)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	_, err = env.svc.Login(ctx, auth.LoginRequest{Email: "a@x.com", Password: "pw2"}, env.session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_DuplicateEmailKeepsFirstHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	firstHash := env.users.users[first.ID].PasswordHash

	_, err = env.svc.Register(ctx, auth.RegisterRequest{Email: "A@X.com", Password: "pw2"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	assert.Len(t, env.users.users, 1)
	assert.Equal(t, firstHash, env.users.users[first.ID].PasswordHash)
}

func TestRegister_ConcurrentDuplicateCaughtByConstraint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// The lookup sees no user, then a concurrent request inserts one.
	env.users.getByEmailHook = func() {
		env.users.getByEmailHook = nil
		_, err := env.users.Create(ctx, user.User{Email: "race@x.com", PasswordHash: "h", Role: user.RoleEmployee})
		require.NoError(t, err)
	}

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "race@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Register(context.Background(), auth.RegisterRequest{Email: "not-an-email", Password: ""})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Empty(t, env.users.users)
}

func TestVerify(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "s3cret"})
	require.NoError(t, err)

	summary, err := env.svc.Verify(ctx, "ann@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ann", summary.Name)
	assert.Equal(t, user.RoleEmployee, summary.Role)

	for _, wrong := range []string{"s3creT", "s3cre", "s3crets", "x3cret"} {
		_, err := env.svc.Verify(ctx, "ann@example.com", wrong)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, wrong)
	}

	_, err = env.svc.Verify(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCreateUser_ByHR(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	manager, err := env.svc.CreateUser(ctx, user.CreateUserRequest{Name: "Boss", Email: "boss@example.com", Password: "pw", Role: "Manager"})
	require.NoError(t, err)

	created, err := env.svc.CreateUser(ctx, user.CreateUserRequest{
		Name:      "Report",
		Email:     "report@example.com",
		Password:  "pw",
		Role:      "Employee",
		ManagerID: &manager.ID,
	})
	require.NoError(t, err)

	stored := env.users.users[created.ID]
	require.NotNil(t, stored.HireDate, "hire date defaults to today")
	assert.Equal(t, manager.ID, *stored.ManagerID)
}

func TestCreateUser_ManagerMustBeManager(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "e@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = env.svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "X", Email: "x@example.com", Password: "pw", Role: "Employee", ManagerID: &employee.ID,
	})
	assert.ErrorIs(t, err, user.ErrManagerNotFound)

	missing := "123e4567-e89b-12d3-a456-426614174000"
	_, err = env.svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "X", Email: "x@example.com", Password: "pw", Role: "Employee", ManagerID: &missing,
	})
	assert.ErrorIs(t, err, user.ErrManagerNotFound)
}

func TestRefreshAndLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "r@example.com", Password: "pw"})
	require.NoError(t, err)
	login, err := env.svc.Login(ctx, auth.LoginRequest{Email: "r@example.com", Password: "pw"}, env.session)
	require.NoError(t, err)

	refreshed, err := env.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Token.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, env.svc.Logout(ctx, login.Token.RefreshToken))

	_, err = env.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Token.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	_, err = env.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Token.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.svc.Register(ctx, auth.RegisterRequest{Email: "c@example.com", Password: "old"})
	require.NoError(t, err)
	login, err := env.svc.Login(ctx, auth.LoginRequest{Email: "c@example.com", Password: "old"}, env.session)
	require.NoError(t, err)

	err = env.svc.ChangePassword(ctx, registered.ID, auth.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	env.mock.ExpectBegin()
	env.mock.ExpectCommit()
	require.NoError(t, env.svc.ChangePassword(ctx, registered.ID, auth.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}))
	assert.NoError(t, env.mock.ExpectationsWereMet())

	_, err = env.svc.Verify(ctx, "c@example.com", "old")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = env.svc.Verify(ctx, "c@example.com", "new")
	assert.NoError(t, err)

	_, err = env.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Token.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLoginWithGoogle_OnlyExistingUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.LoginWithGoogle(ctx, "stranger@gmail.com", env.session)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, env.users.users)

	_, err = env.svc.Register(ctx, auth.RegisterRequest{Email: "known@gmail.com", Password: "pw"})
	require.NoError(t, err)

	resp, err := env.svc.LoginWithGoogle(ctx, "Known@Gmail.com", env.session)
	require.NoError(t, err)
	assert.Equal(t, "known@gmail.com", resp.User.Email)
}
