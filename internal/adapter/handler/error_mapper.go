package handler

import (
	"errors"
	"net/http"

	"motoshop/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an echo.HTTPError carrying the
// fixed response bodies of the API.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrNoCredential),
		errors.Is(err, domain.ErrInvalidCredential):
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"error": "unAuthorized"})

	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, echo.Map{"error": "forbidden access"})

	case errors.Is(err, domain.ErrBadRequest):
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})

	case errors.Is(err, domain.ErrStorageFailure):
		return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{"error": "storage failure"})

	case errors.Is(err, domain.ErrTokenGeneration):
		return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
