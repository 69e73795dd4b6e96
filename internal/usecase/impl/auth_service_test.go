package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ledger/config"
	infraauth "ledger/internal/infra/auth"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/usecase"

	domainerrors "ledger/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	auth  usecase.AuthUsecase
	store *memory.Store
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.RegistrationCode = "FAMILY2024"
	cfg.JWT = config.JWTConfig{
		Secret:          "test_secret_key_very_long_for_testing",
		Issuer:          "ExpenseTracker",
		Audience:        "ExpenseTracker",
		Realm:           "ExpenseTracker",
		ExpirationHours: 24,
	}

	tokenService, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authUsecase := NewAuthService(AuthServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       infraauth.NewSHA256Hasher(),
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return &authFixture{auth: authUsecase, store: store}
}

func registerInput(username string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:         username,
		Email:            username + "@example.com",
		Password:         "hunter2",
		RegistrationCode: "FAMILY2024",
	}
}

func TestAuthService_RegisterIssuesToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	out, err := f.auth.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.User)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "alice@example.com", out.User.Email)
}

func TestAuthService_RegisterRejectsBadInviteCode(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	input := registerInput("alice")
	input.RegistrationCode = "WRONG2024"

	out, err := f.auth.Register(ctx, input)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegistrationCode)

	// Rejected before touching the store: the username stays available.
	out, err = f.auth.Register(ctx, registerInput("alice"))
	assert.NoError(t, err)
	assert.NotNil(t, out)
}

func TestAuthService_RegisterRejectsDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	dup := registerInput("alice")
	dup.Email = "other@example.com"
	out, err := f.auth.Register(ctx, dup)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, err := f.auth.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	out, err := f.auth.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, registered.User.ID, out.User.ID)
}

func TestAuthService_LoginRejectionsAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	// Unknown user and wrong password must produce the exact same error, so
	// a caller cannot probe which usernames exist.
	_, unknownErr := f.auth.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "hunter2"})
	_, badPassErr := f.auth.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errors.Cause(unknownErr), errors.Cause(badPassErr))
}
