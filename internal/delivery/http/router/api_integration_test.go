package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger/config"
	appmiddleware "ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
	"ledger/internal/delivery/http/validator"
	infraauth "ledger/internal/infra/auth"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full HTTP surface over the in-memory store, the
// same composition the "memory" storage driver produces at runtime.
func newTestServer(t *testing.T) *echo.Echo {
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

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenService, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     users,
		Hasher:       infraauth.NewSHA256Hasher(),
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})
	expenseUsecase := impl.NewExpenseService(impl.ExpenseServiceParams{
		ExpenseRepo: memory.NewExpenseRepository(store),
		UserRepo:    users,
		Logger:      logger,
	})
	incomeUsecase := impl.NewIncomeService(impl.IncomeServiceParams{
		IncomeRepo: memory.NewIncomeRepository(store),
		UserRepo:   users,
		Logger:     logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		ExpenseHandler: handler.NewExpenseHandler(expenseUsecase, logger),
		IncomeHandler:  handler.NewIncomeHandler(incomeUsecase, logger),
		AuthMiddleware: appmiddleware.NewAuthMiddleware(tokenService),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func registerAlice(t *testing.T, e *echo.Echo) (token string, userID string) {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@x.com","password":"pw1","registrationCode":"FAMILY2024"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)

	return data.Token, data.User.ID
}

func TestAPI_RegistrationScenarios(t *testing.T) {
	e := newTestServer(t)

	token, _ := registerAlice(t, e)
	assert.NotEmpty(t, token)

	// Same username again, even with the same email: conflict.
	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@x.com","password":"pw2","registrationCode":"FAMILY2024"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	// Wrong invite code: forbidden, regardless of the other fields.
	rec = doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"carol","email":"carol@x.com","password":"pw3","registrationCode":"WRONG2024"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_REGISTRATION_CODE", env.Error.Code)

	// Missing fields: validation failure.
	rec = doJSON(e, http.MethodPost, "/auth/register", "", `{"username":"dave"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_LoginScenarios(t *testing.T) {
	e := newTestServer(t)
	_, aliceID := registerAlice(t, e)

	rec := doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"wrongpw"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	// Unknown username: byte-for-byte the same rejection category.
	rec = doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"ghost","password":"pw1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login", "", `{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, aliceID, data.User.ID)
	assert.NotEmpty(t, data.Token)
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/expenses", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderWWWAuthenticate), `realm="ExpenseTracker"`)

	rec = doJSON(e, http.MethodGet, "/expenses", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_ExpenseLifecycle(t *testing.T) {
	e := newTestServer(t)
	token, aliceID := registerAlice(t, e)

	// Create with the internal category symbol; the response carries the label.
	rec := doJSON(e, http.MethodPost, "/expenses", token,
		`{"amount":50,"category":"GROCERIES","description":"weekly shop","startDate":"2024-01-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)

	var created struct {
		ID        string  `json:"id"`
		Amount    float64 `json:"amount"`
		Category  string  `json:"category"`
		StartDate string  `json:"startDate"`
		UserID    string  `json:"userId"`
		Username  string  `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Groceries", created.Category)
	assert.Equal(t, "2024-01-10", created.StartDate)
	assert.Equal(t, aliceID, created.UserID)
	assert.Equal(t, "alice", created.Username)

	// A January window includes it.
	rec = doJSON(e, http.MethodGet, "/expenses?startDate=2024-01-01&endDate=2024-01-31", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 1)

	// A window starting in February excludes it.
	rec = doJSON(e, http.MethodGet, "/expenses?startDate=2024-02-01", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Empty(t, listed)

	// Update and delete round-trip.
	rec = doJSON(e, http.MethodPut, "/expenses/"+created.ID, token,
		`{"amount":55,"category":"Dining Out","description":"corrected","startDate":"2024-01-11"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodDelete, "/expenses/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/expenses/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_ForeignOwnerCannotMutate(t *testing.T) {
	e := newTestServer(t)
	aliceToken, _ := registerAlice(t, e)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"bob","email":"bob@x.com","password":"pw2","registrationCode":"FAMILY2024"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	var bob struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bob))

	rec = doJSON(e, http.MethodPost, "/expenses", aliceToken,
		`{"amount":50,"category":"GROCERIES","description":"weekly shop","startDate":"2024-01-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	env = decodeEnvelope(t, rec)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// Bob can read the household's records.
	rec = doJSON(e, http.MethodGet, "/expenses", bob.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 1)

	// But cannot delete or update them.
	rec = doJSON(e, http.MethodDelete, "/expenses/"+created.ID, bob.Token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPut, "/expenses/"+created.ID, bob.Token,
		`{"amount":1,"category":"MISC","description":"x","startDate":"2024-01-10"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The owner still can.
	rec = doJSON(e, http.MethodDelete, "/expenses/"+created.ID, aliceToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_IncomeLifecycle(t *testing.T) {
	e := newTestServer(t)
	token, _ := registerAlice(t, e)

	rec := doJSON(e, http.MethodPost, "/incomes", token,
		`{"amount":2500,"description":"salary","isRecurring":true,"startDate":"2024-03-25","endDate":"2024-12-25"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	var created struct {
		ID          string `json:"id"`
		EndDate     string `json:"endDate"`
		IsRecurring bool   `json:"isRecurring"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "2024-12-25", created.EndDate)
	assert.True(t, created.IsRecurring)

	rec = doJSON(e, http.MethodGet, "/incomes", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPut, "/incomes/"+created.ID, token,
		`{"amount":2600,"description":"salary","isRecurring":true,"startDate":"2024-03-25"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/incomes/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_CategoryEndpointAndValidation(t *testing.T) {
	e := newTestServer(t)
	token, _ := registerAlice(t, e)

	rec := doJSON(e, http.MethodGet, "/expenses/categories", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var labels []string
	require.NoError(t, json.Unmarshal(env.Data, &labels))
	assert.Len(t, labels, 26)
	assert.Contains(t, labels, "Dining Out")
	assert.Contains(t, labels, "Groceries")
	assert.Contains(t, labels, "Misc")

	// Unknown category is rejected before anything persists.
	rec = doJSON(e, http.MethodPost, "/expenses", token,
		`{"amount":5,"category":"LOTTERY","description":"x","startDate":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed date too.
	rec = doJSON(e, http.MethodGet, "/expenses?startDate=01-10-2024", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/expenses", token,
		`{"amount":5,"category":"MISC","description":"x","startDate":"2024/01/10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_HealthEndpointIsPublic(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
