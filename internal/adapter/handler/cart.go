package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"motoshop/internal/usecase"
	"motoshop/middleware"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	list   *usecase.ListCart
	add    *usecase.AddCartItem
	remove *usecase.RemoveCartItem
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(list *usecase.ListCart, add *usecase.AddCartItem, remove *usecase.RemoveCartItem) *CartHandler {
	return &CartHandler{list: list, add: add, remove: remove}
}

// HandleList processes GET /cart/:user. The session gate has already run;
// the ownership check happens in the usecase.
func (h *CartHandler) HandleList(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		// The gate did not run; treat as unauthenticated rather than crash.
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"error": "unAuthorized"})
	}

	items, err := h.list.Execute(c.Request().Context(), claims, c.Param("user"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// cartItemRequest carries the owner key; the rest of the body is stored as
// an opaque product payload.
type cartItemRequest struct {
	CurrentUser string `json:"currentUser"`
}

// HandleAdd processes POST /cart.
func (h *CartHandler) HandleAdd(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	var req cartItemRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	id, err := h.add.Execute(c.Request().Context(), req.CurrentUser, json.RawMessage(body))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}

// HandleRemove processes DELETE /cart/:id.
func (h *CartHandler) HandleRemove(c echo.Context) error {
	deleted, err := h.remove.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}
