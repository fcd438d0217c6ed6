package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
	"tienda/internal/validator"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type CreateProductInput struct {
	Name  string
	SKU   string
	Price decimal.Decimal
	Stock int64
	Size  *string
	Color *string
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	var vs []validator.Violation
	vs = validator.CheckRequiredString("nombre", in.Name, 120, vs)
	vs = validator.CheckRequiredString("sku", in.SKU, 64, vs)
	vs = validator.CheckPrice("precio", in.Price, vs)
	if in.Stock < 0 {
		vs = append(vs, validator.Violation{Field: "stock", Message: "stock debe ser >= 0"})
	}
	vs = validator.CheckOptionalString("talla", in.Size, 16, vs)
	vs = validator.CheckOptionalString("color", in.Color, 32, vs)
	if len(vs) > 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, validator.Join(vs))
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:  strings.TrimSpace(in.Name),
		SKU:   strings.TrimSpace(in.SKU),
		Price: in.Price,
		Stock: in.Stock,
		Size:  in.Size,
		Color: in.Color,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.Product{}, NewHTTPError(http.StatusConflict, "SKU ya existe")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// GET /productosの入力DTO
type ListProductsInput struct {
	Q     string
	Skip  int
	Limit int
}

func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	skip, limit, err := normalizePage(in.Skip, in.Limit)
	if err != nil {
		return nil, err
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Q:     strings.TrimSpace(in.Q),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 部分更新：nilのフィールドは触らない。SKUは不変。
type UpdateProductInput struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int64
	Size  *string
	Color *string
}

func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	var vs []validator.Violation
	if in.Name != nil {
		vs = validator.CheckRequiredString("nombre", *in.Name, 120, vs)
	}
	if in.Price != nil {
		vs = validator.CheckPrice("precio", *in.Price, vs)
	}
	if in.Stock != nil && *in.Stock < 0 {
		vs = append(vs, validator.Violation{Field: "stock", Message: "stock debe ser >= 0"})
	}
	vs = validator.CheckOptionalString("talla", in.Size, 16, vs)
	vs = validator.CheckOptionalString("color", in.Color, 32, vs)
	if len(vs) > 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, validator.Join(vs))
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		// 既存明細のprecio_unitarioはスナップショットなので影響しない
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Size != nil {
		p.Size = in.Size
	}
	if in.Color != nil {
		p.Color = in.Color
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "Producto no encontrado")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Producto no encontrado")
	}
	if errors.Is(err, repo.ErrRestricted) {
		// 注文明細から参照されている商品は消せない
		return NewHTTPError(http.StatusConflict, "Producto referenciado por órdenes")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// skip/limitの正規化。limitは100で頭打ち（元API準拠）。
func normalizePage(skip int, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, NewHTTPError(http.StatusBadRequest, "skip inválido")
	}
	if limit < 0 {
		return 0, 0, NewHTTPError(http.StatusBadRequest, "limit inválido")
	}
	if limit == 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit, nil
}
