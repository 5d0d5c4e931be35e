package handler

import (
	"net/http"
	"strconv"

	"motoshop/internal/domain"
	"motoshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	list   *usecase.ListProducts
	page   *usecase.PageProducts
	count  *usecase.CountProducts
	get    *usecase.GetProduct
	upsert *usecase.UpsertProduct
	create *usecase.CreateProduct
}

// NewProductHandler creates a new product handler.
func NewProductHandler(
	list *usecase.ListProducts,
	page *usecase.PageProducts,
	count *usecase.CountProducts,
	get *usecase.GetProduct,
	upsert *usecase.UpsertProduct,
	create *usecase.CreateProduct,
) *ProductHandler {
	return &ProductHandler{list: list, page: page, count: count, get: get, upsert: upsert, create: create}
}

// HandleList processes GET /product and GET /products with an optional
// ?brand= filter.
func (h *ProductHandler) HandleList(c echo.Context) error {
	products, err := h.list.Execute(c.Request().Context(), c.QueryParam("brand"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// HandlePage processes GET /allProducts?page=&size= (0-indexed page).
func (h *ProductHandler) HandlePage(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	products, err := h.page.Execute(c.Request().Context(), page, size)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// HandleCount processes GET /count.
func (h *ProductHandler) HandleCount(c echo.Context) error {
	count, err := h.count.Execute(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": count})
}

// HandleGet processes GET /product/:id. An unknown id yields a null body,
// not an error.
func (h *ProductHandler) HandleGet(c echo.Context) error {
	product, err := h.get.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// HandleUpsert processes PUT /product/:id, replacing exactly the six
// writable fields.
func (h *ProductHandler) HandleUpsert(c echo.Context) error {
	var fields domain.ProductFields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	result, err := h.upsert.Execute(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// HandleCreate processes POST /product.
func (h *ProductHandler) HandleCreate(c echo.Context) error {
	var fields domain.ProductFields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	id, err := h.create.Execute(c.Request().Context(), fields)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}
