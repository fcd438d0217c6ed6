package handler

import (
	"net/http"
	"strconv"

	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordenes のAPI
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/ordenes", h.create)
	e.GET("/ordenes", h.list)
	e.GET("/ordenes/:id", h.detail)
	e.PUT("/ordenes/:id/estado", h.updateStatus)
	e.DELETE("/ordenes/:id", h.remove)
}

type OrderItemRequest struct {
	ProductID int64 `json:"producto_id"`
	Quantity  int64 `json:"cantidad"`
}

type OrderCreateRequest struct {
	CustomerID int64              `json:"cliente_id"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"estado"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	skip, limit, ok := parsePageParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skip/limit inválido"})
	}

	var customerID *int64
	if v := c.QueryParam("cliente_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cliente_id inválido"})
		}
		customerID = &id
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Status:     c.QueryParam("estado"),
		CustomerID: customerID,
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
