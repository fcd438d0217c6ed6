package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
	"tienda/internal/validator"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
}

// DI
func NewCustomerUsecase(customerRepo repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

type CreateCustomerInput struct {
	Name  string
	Email string
	Phone *string
}

func (u *CustomerUsecase) Create(ctx context.Context, in CreateCustomerInput) (model.Customer, error) {
	var vs []validator.Violation
	vs = validator.CheckRequiredString("nombre", in.Name, 120, vs)
	vs = validator.CheckOptionalString("telefono", in.Phone, 32, vs)
	if !validator.IsEmailLike(in.Email) || len(in.Email) > 255 {
		vs = append(vs, validator.Violation{Field: "email", Message: "email inválido"})
	}
	if len(vs) > 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, validator.Join(vs))
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: in.Phone,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.Customer{}, NewHTTPError(http.StatusConflict, "Email ya registrado")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type ListCustomersInput struct {
	Q     string
	Skip  int
	Limit int
}

func (u *CustomerUsecase) List(ctx context.Context, in ListCustomersInput) ([]model.Customer, error) {
	skip, limit, err := normalizePage(in.Skip, in.Limit)
	if err != nil {
		return nil, err
	}

	items, err := u.customerRepo.List(ctx, repo.CustomerListQuery{
		Q:     strings.TrimSpace(in.Q),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "Cliente no encontrado")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// 部分更新。emailは不変（元API準拠）。
type UpdateCustomerInput struct {
	Name  *string
	Phone *string
}

func (u *CustomerUsecase) Update(ctx context.Context, customerID int64, in UpdateCustomerInput) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	var vs []validator.Violation
	if in.Name != nil {
		vs = validator.CheckRequiredString("nombre", *in.Name, 120, vs)
	}
	vs = validator.CheckOptionalString("telefono", in.Phone, 32, vs)
	if len(vs) > 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, validator.Join(vs))
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "Cliente no encontrado")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}

	if err := u.customerRepo.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Customer{}, NewHTTPError(http.StatusNotFound, "Cliente no encontrado")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Delete(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "id inválido")
	}

	err := u.customerRepo.Delete(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Cliente no encontrado")
	}
	if errors.Is(err, repo.ErrRestricted) {
		// 注文がある顧客は消せない
		return NewHTTPError(http.StatusConflict, "Cliente referenciado por órdenes")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
