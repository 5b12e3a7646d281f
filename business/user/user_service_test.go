package user

import (
	"context"
	"testing"

	"suplementosPro/domain"
	"suplementosPro/internal/repository/memory"
	"suplementosPro/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*userService, *memory.Store) {
	t.Helper()
	utils.InitJWT("test-secret")
	store := memory.NewStore()
	return NewUserService(memory.NewUserRepository(store), validator.New()), store
}

func TestRegister_IssuesToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, &domain.User{
		Username: "carlos",
		Email:    "carlos@example.com",
		FullName: "Carlos Silva",
	}, "segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotZero(t, user.ID)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, "carlos", claims.Username)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{
		Username: "carlos",
		Email:    "carlos@example.com",
	}, "segredo123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, &domain.User{
		Username: "carlos",
		Email:    "outro@example.com",
	}, "segredo123")
	require.ErrorIs(t, err, domain.ErrUserConflict)

	// first account stays usable
	token, user, err := svc.Login(ctx, "carlos", "segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "carlos@example.com", user.Email)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{
		Username: "carlos",
		Email:    "carlos@example.com",
	}, "segredo123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, &domain.User{
		Username: "outro",
		Email:    "carlos@example.com",
	}, "segredo123")
	require.ErrorIs(t, err, domain.ErrUserConflict)
}

func TestRegister_RejectsWeakInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{Username: "ana", Email: "not-an-email"}, "segredo123")
	require.Error(t, err)

	_, _, err = svc.Register(ctx, &domain.User{Username: "ana", Email: "ana@example.com"}, "curta")
	require.Error(t, err)
}

func TestLogin_WrongPasswordAlwaysFails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{
		Username: "maria",
		Email:    "maria@example.com",
	}, "segredo123")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err = svc.Login(ctx, "maria", "segredo123")
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "maria", "senha-errada")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}
}

func TestLogin_ByEmailFallback(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &domain.User{
		Username: "maria",
		Email:    "maria@example.com",
	}, "segredo123")
	require.NoError(t, err)

	_, user, err := svc.Login(ctx, "maria@example.com", "segredo123")
	require.NoError(t, err)
	require.Equal(t, "maria", user.Username)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "ninguem", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
