package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"suplementosPro/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func callWithAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := callWithAuth(t, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _ := callWithAuth(t, "Token abc")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = callWithAuth(t, "Bearer")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	utils.InitJWT("test-secret")

	rec, _ := callWithAuth(t, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("5", "rafael")
	require.NoError(t, err)

	utils.InitJWT("another-secret")
	rec, _ := callWithAuth(t, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenSetsContext(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("5", "rafael")
	require.NoError(t, err)

	rec, c := callWithAuth(t, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, uint(5), c.Get("user_id"))
	require.Equal(t, "rafael", c.Get("username"))
	require.Equal(t, token, c.Get("token"))
}
