package handler_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kislikjeka/bookstore/internal/module/reporting"
	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/platform/distributor"
	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/platform/sale"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/report"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New("test", io.Discard)
}

func withUser(ctx context.Context, id uuid.UUID, role user.Role) context.Context {
	ctx = context.WithValue(ctx, middleware.UserIDKey, id)
	ctx = context.WithValue(ctx, middleware.UsernameKey, "admin1")
	return context.WithValue(ctx, middleware.RoleKey, role)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, p *product.Product) (validation.Result[*product.Product], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(validation.Result[*product.Product]), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, p *product.Product) (validation.Result[*product.Product], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(validation.Result[*product.Product]), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Record(ctx context.Context, userID uuid.UUID, in *sale.Sale) (validation.Result[*sale.Sale], error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(validation.Result[*sale.Sale]), args.Error(1)
}

func (m *MockSaleService) GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleService) Lines(ctx context.Context, p sale.Period) ([]sale.Line, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sale.Line), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, req reporting.Request) (*report.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Result), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, login, password string) (*user.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUserAdminService struct {
	mock.Mock
}

func (m *MockUserAdminService) Register(ctx context.Context, reg user.Registration) (validation.Result[*user.User], error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(validation.Result[*user.User]), args.Error(1)
}

func (m *MockUserAdminService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserAdminService) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserAdminService) ChangeRole(ctx context.Context, id uuid.UUID, role user.Role) (*user.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, c *category.Category) (validation.Result[*category.Category], error) {
	args := m.Called(ctx, c)
	return args.Get(0).(validation.Result[*category.Category]), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, c *category.Category) (validation.Result[*category.Category], error) {
	args := m.Called(ctx, c)
	return args.Get(0).(validation.Result[*category.Category]), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryInvalidator struct {
	mock.Mock
}

func (m *MockCategoryInvalidator) Invalidate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, c *client.Client) (validation.Result[*client.Client], error) {
	args := m.Called(ctx, c)
	return args.Get(0).(validation.Result[*client.Client]), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, c *client.Client) (validation.Result[*client.Client], error) {
	args := m.Called(ctx, c)
	return args.Get(0).(validation.Result[*client.Client]), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDistributorService struct {
	mock.Mock
}

func (m *MockDistributorService) Create(ctx context.Context, d *distributor.Distributor) (validation.Result[*distributor.Distributor], error) {
	args := m.Called(ctx, d)
	return args.Get(0).(validation.Result[*distributor.Distributor]), args.Error(1)
}

func (m *MockDistributorService) Update(ctx context.Context, d *distributor.Distributor) (validation.Result[*distributor.Distributor], error) {
	args := m.Called(ctx, d)
	return args.Get(0).(validation.Result[*distributor.Distributor]), args.Error(1)
}

func (m *MockDistributorService) GetByID(ctx context.Context, id uuid.UUID) (*distributor.Distributor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distributor.Distributor), args.Error(1)
}

func (m *MockDistributorService) List(ctx context.Context) ([]*distributor.Distributor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*distributor.Distributor), args.Error(1)
}

func (m *MockDistributorService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
