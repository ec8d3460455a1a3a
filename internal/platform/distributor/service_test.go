package distributor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/bookstore/internal/platform/distributor"
)

// MockRepository is a mock implementation of distributor.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, d *distributor.Distributor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*distributor.Distributor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distributor.Distributor), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*distributor.Distributor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*distributor.Distributor), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, d *distributor.Distributor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func newDistributor() *distributor.Distributor {
	return &distributor.Distributor{
		Name:    "distribuidora andina srl",
		Email:   "pedidos@andina.bo",
		Phone:   "44112233",
		Address: "Av. Blanco Galindo Km 5",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ExistsByName", ctx, "Distribuidora Andina SRL", uuid.Nil).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*distributor.Distributor")).Return(nil)

		res, err := distributor.NewService(repo).Create(ctx, newDistributor())

		require.NoError(t, err)
		require.True(t, res.Valid())
		assert.Equal(t, "Distribuidora Andina SRL", res.Value.Name)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ExistsByName", ctx, "Distribuidora Andina SRL", uuid.Nil).Return(true, nil)

		res, err := distributor.NewService(repo).Create(ctx, newDistributor())

		require.NoError(t, err)
		assert.True(t, res.Errors.Has(distributor.FieldName))
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ExistsByName", ctx, "Distribuidora Andina SRL", uuid.Nil).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := distributor.NewService(repo).Create(ctx, newDistributor())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create distributor")
	})
}

func TestService_Update_InvalidID(t *testing.T) {
	_, err := distributor.NewService(new(MockRepository)).Update(context.Background(), newDistributor())
	assert.ErrorIs(t, err, distributor.ErrInvalidID)
}
