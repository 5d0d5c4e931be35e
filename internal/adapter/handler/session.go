package handler

import (
	"net/http"

	"motoshop/internal/domain"
	"motoshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionHandler issues and revokes session cookies.
type SessionHandler struct {
	uc *usecase.IssueSession
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(uc *usecase.IssueSession) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// HandleIssue processes POST /jwt. The body is an opaque identity claim;
// the response sets the session cookie.
func (h *SessionHandler) HandleIssue(c echo.Context) error {
	var claims domain.Claims
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	token, err := h.uc.Execute(c.Request().Context(), claims)
	if err != nil {
		return mapDomainError(err)
	}

	c.SetCookie(sessionCookie(token))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// HandleLogout processes POST /logOut. Idempotent: clearing an absent cookie
// still succeeds.
func (h *SessionHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(expiredSessionCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// sessionCookie builds the session-scoped wire carrier: HTTP-only, secure
// transport only, cross-site sendable. No Max-Age; the browser drops it with
// the session, the token's own expiry bounds its usable lifetime.
func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// expiredSessionCookie instructs the client to discard the session cookie.
func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
