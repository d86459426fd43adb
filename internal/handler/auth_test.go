package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/f1-ticket-booking/internal/config"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

func testConfig() config.Config {
	return config.Config{
		Env:               "test",
		JWTSecret:         "test-secret",
		AccessTTLMin:      15,
		RefreshTTLDays:    7,
		BcryptCost:        bcrypt.MinCost,
		OpeningBalanceUSD: decimal.RequireFromString("1000000.00"),
		RateINRUSD:        decimal.RequireFromString("0.012"),
	}
}

func newAuthHandler() *AuthHandler {
	return NewAuthHandler(testConfig(), store.NewMemory(nil))
}

// jsonReq builds an echo context with a JSON body and returns it together
// with the response recorder.
func jsonReq(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Lewis","email":"Lewis@Example.com","password":"secret"}`)

	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Account struct {
			ID        uint64 `json:"id"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			WalletUSD string `json:"wallet_usd"`
		} `json:"account"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lewis", resp.Account.Name)
	assert.Equal(t, "lewis@example.com", resp.Account.Email)
	assert.Equal(t, "1000000.00", resp.Account.WalletUSD)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Refresh.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Lewis","email":"lewis@example.com","password":"secret"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Other","email":"LEWIS@example.com","password":"other"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register", `{"email":"x@example.com"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Max","email":"max@example.com","password":"verstappen"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonReq(http.MethodPost, "/v1/auth/login",
		`{"email":"max@example.com","password":"verstappen"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"wallet_usd":"1000000.00"`)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Max","email":"max@example.com","password":"verstappen"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonReq(http.MethodPost, "/v1/auth/login",
		`{"email":"max@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/login",
		`{"email":"nobody@example.com","password":"x"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"pw"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	c, rec = jsonReq(http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// The consumed token is revoked; replaying it must fail.
	c, rec = jsonReq(http.MethodPost, "/v1/auth/refresh",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Ben","email":"ben@example.com","password":"pw"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Refresh struct {
			Token string `json:"token"`
		} `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	c, rec = jsonReq(http.MethodPost, "/v1/auth/logout",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = jsonReq(http.MethodPost, "/v1/auth/refresh-access",
		`{"refresh_token":"`+reg.Refresh.Token+`"}`)
	require.NoError(t, h.RefreshAccess(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	h := newAuthHandler()
	c, rec := jsonReq(http.MethodPost, "/v1/auth/register",
		`{"name":"Carla","email":"carla@example.com","password":"pw"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Account struct {
			ID uint64 `json:"id"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	c, rec = jsonReq(http.MethodGet, "/v1/me", "")
	c.Set("user_id", float64(reg.Account.ID)) // as the JWT middleware would
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"carla@example.com"`)
	assert.Contains(t, rec.Body.String(), `"wallet_usd":"1000000.00"`)
}
