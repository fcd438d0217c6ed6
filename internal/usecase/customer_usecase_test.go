package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CustCustomerRepoMock struct{ mock.Mock }

func (m *CustCustomerRepoMock) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustCustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustCustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustCustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustCustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.Name == "Ana" && c.Email == "ana@example.com"
	})).Return(model.Customer{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)

	out, err := uc.Create(ctx, usecase.CreateCustomerInput{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	cRepo.AssertExpectations(t)
}

func TestCustomerUsecase_Create_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCustomerUsecase(new(CustCustomerRepoMock))

	for _, email := range []string{"", "no-arroba", "a@b", "a @b.com"} {
		_, err := uc.Create(ctx, usecase.CreateCustomerInput{Name: "Ana", Email: email})
		assertHTTPError(t, err, http.StatusBadRequest, "email inválido")
	}
}

func TestCustomerUsecase_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.Anything).Return(model.Customer{}, repo.ErrConflict)

	_, err := uc.Create(ctx, usecase.CreateCustomerInput{Name: "Ana", Email: "ana@example.com"})
	assertHTTPError(t, err, http.StatusConflict, "Email ya registrado")
}

func TestCustomerUsecase_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.Get(ctx, 9)
	assertHTTPError(t, err, http.StatusNotFound, "Cliente no encontrado")
}

// emailは部分更新でも変えられない
func TestCustomerUsecase_Update_PhoneOnly(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	phone := "+54 11 5555-0000"
	cRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Customer{ID: 1, Name: "Ana", Email: "ana@example.com"}, nil)
	cRepo.On("Update", mock.Anything, mock.MatchedBy(func(c model.Customer) bool {
		return c.ID == 1 && c.Name == "Ana" && c.Email == "ana@example.com" && c.Phone != nil && *c.Phone == phone
	})).Return(nil)

	out, err := uc.Update(ctx, 1, usecase.UpdateCustomerInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	cRepo.AssertExpectations(t)
}

func TestCustomerUsecase_Delete_RestrictedByOrders(t *testing.T) {
	ctx := context.Background()
	cRepo := new(CustCustomerRepoMock)
	uc := usecase.NewCustomerUsecase(cRepo)

	cRepo.On("Delete", mock.Anything, int64(1)).Return(repo.ErrRestricted)

	err := uc.Delete(ctx, 1)
	assertHTTPError(t, err, http.StatusConflict, "referenciado por órdenes")
}
