//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/platform/sale"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/testutil/testdb"
)

var testDB *testdb.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	testDB, err = testdb.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start test database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = testDB.Close(ctx)
	os.Exit(code)
}

func setupTest(t *testing.T) context.Context {
	ctx := context.Background()
	require.NoError(t, testDB.Truncate(ctx))
	return ctx
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func createCategory(t *testing.T, ctx context.Context, name string) *category.Category {
	c := &category.Category{ID: uuid.New(), Name: name, Description: "Artículos varios.", CreatedAt: now(), UpdatedAt: now()}
	require.NoError(t, NewCategoryRepository(testDB.Pool).Create(ctx, c))
	return c
}

func createProduct(t *testing.T, ctx context.Context, categoryID uuid.UUID, name, price string, stock int) *product.Product {
	p := &product.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: "Producto de prueba.",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		CategoryID:  categoryID,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}
	require.NoError(t, NewProductRepository(testDB.Pool).Create(ctx, p))
	return p
}

func createClient(t *testing.T, ctx context.Context, email string) *client.Client {
	c := &client.Client{
		ID:        uuid.New(),
		FirstName: "Ana",
		LastName:  "Rojas",
		Email:     email,
		Phone:     "71234567",
		Address:   "Av. América 123",
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	require.NoError(t, NewClientRepository(testDB.Pool).Create(ctx, c))
	return c
}

func createUser(t *testing.T, ctx context.Context, username string, role user.Role) *user.User {
	u := &user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}
	require.NoError(t, NewUserRepository(testDB.Pool).Create(ctx, u))
	return u
}

func TestCategoryRepository_NameUniqueness(t *testing.T) {
	ctx := setupTest(t)
	repo := NewCategoryRepository(testDB.Pool)

	c := createCategory(t, ctx, "Papelería")

	exists, err := repo.ExistsByName(ctx, "PAPELERÍA", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Papelería", c.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a category never conflicts with itself")

	dup := &category.Category{ID: uuid.New(), Name: "papelería", CreatedAt: now(), UpdatedAt: now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), category.ErrDuplicateName)
}

func TestCategoryRepository_CountProducts(t *testing.T) {
	ctx := setupTest(t)
	repo := NewCategoryRepository(testDB.Pool)

	c := createCategory(t, ctx, "Libros")
	createProduct(t, ctx, c.ID, "Cuaderno A4", "12.50", 3)
	createProduct(t, ctx, c.ID, "Lápiz HB", "1.00", 10)

	n, err := repo.CountProducts(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCategoryRepository_GetMissing(t *testing.T) {
	ctx := setupTest(t)

	_, err := NewCategoryRepository(testDB.Pool).GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestProductRepository_PriceRoundTrip(t *testing.T) {
	ctx := setupTest(t)
	repo := NewProductRepository(testDB.Pool)

	c := createCategory(t, ctx, "Arte")
	p := createProduct(t, ctx, c.ID, "Acuarelas 12 colores", "45.90", 4)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("45.90")), "price %s", got.Price)
	assert.Equal(t, "Arte", got.CategoryName)

	got.Price = decimal.RequireFromString("50")
	got.Stock = 0
	got.UpdatedAt = now()
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "50.00", list[0].Price.StringFixed(2))
	assert.Equal(t, 0, list[0].Stock)
}

func TestClientRepository_EmailCaseInsensitive(t *testing.T) {
	ctx := setupTest(t)
	repo := NewClientRepository(testDB.Pool)

	c := createClient(t, ctx, "ana@example.com")

	exists, err := repo.ExistsByEmail(ctx, "ANA@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "ana@example.com", c.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), client.ErrClientNotFound)
}

func TestUserRepository_GetByLogin(t *testing.T) {
	ctx := setupTest(t)
	repo := NewUserRepository(testDB.Pool)

	u := createUser(t, ctx, "admin1", user.RoleAdmin)
	createUser(t, ctx, "cajero1", user.RoleEmployee)

	byName, err := repo.GetByLogin(ctx, "ADMIN1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := repo.GetByLogin(ctx, "admin1@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, byEmail.Role)

	_, err = repo.GetByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	admins, err := repo.CountByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, admins)
}

func TestSaleRepository_RecordDecrementsStock(t *testing.T) {
	ctx := setupTest(t)
	repo := NewSaleRepository(testDB.Pool)
	products := NewProductRepository(testDB.Pool)

	cat := createCategory(t, ctx, "Escolar")
	p1 := createProduct(t, ctx, cat.ID, "Cuaderno A4", "12.50", 5)
	p2 := createProduct(t, ctx, cat.ID, "Borrador", "2.00", 10)
	cl := createClient(t, ctx, "cliente@example.com")
	u := createUser(t, ctx, "cajero1", user.RoleEmployee)

	s := &sale.Sale{
		ID:       uuid.New(),
		ClientID: cl.ID,
		UserID:   u.ID,
		Items: []sale.Item{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 3},
		},
		CreatedAt: now(),
	}
	require.NoError(t, repo.Record(ctx, s))
	assert.Equal(t, "31.00", s.Total.StringFixed(2))
	assert.Equal(t, "12.50", s.Items[0].UnitPrice.StringFixed(2))

	got, err := products.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)

	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.True(t, stored.Total.Equal(s.Total))

	lines, err := repo.Lines(ctx, sale.Period{})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Ana Rojas", lines[0].ClientName)
	assert.Equal(t, "Escolar", lines[0].CategoryName)
}

func TestSaleRepository_InsufficientStockRollsBack(t *testing.T) {
	ctx := setupTest(t)
	repo := NewSaleRepository(testDB.Pool)
	products := NewProductRepository(testDB.Pool)

	cat := createCategory(t, ctx, "Escolar")
	p1 := createProduct(t, ctx, cat.ID, "Cuaderno A4", "12.50", 5)
	p2 := createProduct(t, ctx, cat.ID, "Borrador", "2.00", 1)
	cl := createClient(t, ctx, "cliente@example.com")
	u := createUser(t, ctx, "cajero1", user.RoleEmployee)

	s := &sale.Sale{
		ID:       uuid.New(),
		ClientID: cl.ID,
		UserID:   u.ID,
		Items: []sale.Item{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 4},
		},
		CreatedAt: now(),
	}
	err := repo.Record(ctx, s)

	var stockErr *sale.InsufficientStockError
	require.True(t, errors.As(err, &stockErr), "got %v", err)
	assert.Equal(t, p2.ID, stockErr.ProductID)
	assert.Equal(t, 1, stockErr.Available)

	got, err := products.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock, "stock must be untouched after a failed sale")

	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)
}

func TestSaleRepository_UnknownProduct(t *testing.T) {
	ctx := setupTest(t)
	repo := NewSaleRepository(testDB.Pool)

	cl := createClient(t, ctx, "cliente@example.com")
	u := createUser(t, ctx, "cajero1", user.RoleEmployee)
	missing := uuid.New()

	err := repo.Record(ctx, &sale.Sale{
		ID:        uuid.New(),
		ClientID:  cl.ID,
		UserID:    u.ID,
		Items:     []sale.Item{{ProductID: missing, Quantity: 1}},
		CreatedAt: now(),
	})

	var unknown *sale.UnknownProductError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, missing, unknown.ProductID)
}

func TestSaleRepository_LinesPeriod(t *testing.T) {
	ctx := setupTest(t)
	repo := NewSaleRepository(testDB.Pool)

	cat := createCategory(t, ctx, "Escolar")
	p := createProduct(t, ctx, cat.ID, "Cuaderno A4", "10.00", 50)
	cl := createClient(t, ctx, "cliente@example.com")
	u := createUser(t, ctx, "cajero1", user.RoleEmployee)

	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, &sale.Sale{
			ID:        uuid.New(),
			ClientID:  cl.ID,
			UserID:    u.ID,
			Items:     []sale.Item{{ProductID: p.ID, Quantity: 1}},
			CreatedAt: day.AddDate(0, 0, i),
		}))
	}

	lines, err := repo.Lines(ctx, sale.Period{From: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	lines, err = repo.Lines(ctx, sale.Period{To: day})
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
