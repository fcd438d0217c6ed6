package handler

import (
	"net/http"
	"strconv"

	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// :id形式のパスパラメータ
func parseIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// skip/limitのクエリパラメータ（省略時は0）
func parsePageParams(c echo.Context) (int, int, bool) {
	skip := 0
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		skip = n
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		limit = n
	}

	return skip, limit, true
}

// /productos のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/productos", h.create)
	e.GET("/productos", h.list)
	e.GET("/productos/:id", h.detail)
	e.PUT("/productos/:id", h.update)
	e.DELETE("/productos/:id", h.remove)
}

type ProductCreateRequest struct {
	Name  string          `json:"nombre"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"precio"`
	Stock int64           `json:"stock"`
	Size  *string         `json:"talla"`
	Color *string         `json:"color"`
}

type ProductUpdateRequest struct {
	Name  *string          `json:"nombre"`
	Price *decimal.Decimal `json:"precio"`
	Stock *int64           `json:"stock"`
	Size  *string          `json:"talla"`
	Color *string          `json:"color"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:  req.Name,
		SKU:   req.SKU,
		Price: req.Price,
		Stock: req.Stock,
		Size:  req.Size,
		Color: req.Color,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) list(c echo.Context) error {
	skip, limit, ok := parsePageParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skip/limit inválido"})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Q:     c.QueryParam("q"),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
		Size:  req.Size,
		Color: req.Color,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
