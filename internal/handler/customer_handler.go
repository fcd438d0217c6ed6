package handler

import (
	"net/http"

	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /clientes のAPI
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/clientes", h.create)
	e.GET("/clientes", h.list)
	e.GET("/clientes/:id", h.detail)
	e.PUT("/clientes/:id", h.update)
	e.DELETE("/clientes/:id", h.remove)
}

type CustomerCreateRequest struct {
	Name  string  `json:"nombre"`
	Email string  `json:"email"`
	Phone *string `json:"telefono"`
}

type CustomerUpdateRequest struct {
	Name  *string `json:"nombre"`
	Phone *string `json:"telefono"`
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) list(c echo.Context) error {
	skip, limit, ok := parsePageParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "skip/limit inválido"})
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListCustomersInput{
		Q:     c.QueryParam("q"),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
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

func (h *CustomerHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id inválido"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
