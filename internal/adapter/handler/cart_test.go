package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"motoshop/internal/domain"
	"motoshop/internal/infrastructure/token"
	"motoshop/internal/usecase"
	"motoshop/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartTestSecret = "test-secret-for-cart-handler-tests"

// setupCart wires the real JWT manager, session gate, and cart handler so
// the whole credential path is exercised; only storage is mocked.
func setupCart(store *mockCartStore) *echo.Echo {
	logger := slog.Default()
	mgr := token.NewJWTManager(cartTestSecret, 10*time.Hour)

	h := NewCartHandler(
		usecase.NewListCart(store, logger),
		usecase.NewAddCartItem(store, logger),
		usecase.NewRemoveCartItem(store, logger),
	)
	gate := middleware.NewSessionAuth(mgr, logger)

	e := echo.New()
	e.GET("/cart/:user", h.HandleList, gate.RequireSession())
	e.POST("/cart", h.HandleAdd)
	e.DELETE("/cart/:id", h.HandleRemove)
	return e
}

func issueCookie(t *testing.T, claims domain.Claims) *http.Cookie {
	t.Helper()
	mgr := token.NewJWTManager(cartTestSecret, 10*time.Hour)
	signed, err := mgr.Issue(claims)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: signed}
}

func TestCartList_OwnerSeesOnlyOwnItems(t *testing.T) {
	store := &mockCartStore{items: []domain.CartItem{
		{ID: "c1", CurrentUser: "a@x.com", Product: json.RawMessage(`{"productId":"p1"}`)},
		{ID: "c2", CurrentUser: "b@x.com", Product: json.RawMessage(`{"productId":"p2"}`)},
	}}
	e := setupCart(store)

	req := httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil)
	req.AddCookie(issueCookie(t, domain.Claims{"email": "a@x.com"}))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []domain.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, "a@x.com", items[0].CurrentUser)
}

func TestCartList_OtherUsersCartForbidden(t *testing.T) {
	e := setupCart(&mockCartStore{})

	req := httptest.NewRequest(http.MethodGet, "/cart/b@x.com", nil)
	req.AddCookie(issueCookie(t, domain.Claims{"email": "a@x.com"}))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden access"}`, rec.Body.String())
}

func TestCartList_NoCookieUnauthorized(t *testing.T) {
	e := setupCart(&mockCartStore{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unAuthorized"}`, rec.Body.String())
}

func TestCartList_ForeignSignatureUnauthorized(t *testing.T) {
	e := setupCart(&mockCartStore{})

	other := token.NewJWTManager("a-different-secret-entirely", 10*time.Hour)
	signed, err := other.Issue(domain.Claims{"email": "a@x.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unAuthorized"}`, rec.Body.String())
}

func TestCartList_ExpiredTokenUnauthorized(t *testing.T) {
	e := setupCart(&mockCartStore{})

	expired := token.NewJWTManager(cartTestSecret, -time.Minute)
	signed, err := expired.Issue(domain.Claims{"email": "a@x.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartList_ClaimWithoutEmailForbidden(t *testing.T) {
	e := setupCart(&mockCartStore{})

	req := httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil)
	req.AddCookie(issueCookie(t, domain.Claims{"name": "no email claim"}))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Valid credential, unusable identity: fail closed as forbidden.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden access"}`, rec.Body.String())
}

func TestCartAdd(t *testing.T) {
	store := &mockCartStore{insertID: "c9"}
	e := setupCart(store)

	req := httptest.NewRequest(http.MethodPost, "/cart",
		strings.NewReader(`{"currentUser":"a@x.com","productId":"p1","name":"Helmet X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"insertedId":"c9"}`, rec.Body.String())
}

func TestCartAdd_MalformedBody(t *testing.T) {
	e := setupCart(&mockCartStore{})

	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(`{broken`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartRemove(t *testing.T) {
	e := setupCart(&mockCartStore{deleted: 1})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/c1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
}

func TestCartList_StorageFailure(t *testing.T) {
	e := setupCart(&mockCartStore{err: domain.ErrStorageFailure})

	req := httptest.NewRequest(http.MethodGet, "/cart/a@x.com", nil)
	req.AddCookie(issueCookie(t, domain.Claims{"email": "a@x.com"}))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"storage failure"}`, rec.Body.String())
}
