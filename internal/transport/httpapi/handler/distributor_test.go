package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/bookstore/internal/platform/distributor"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/handler"
)

func distributorRouter(svc *MockDistributorService) http.Handler {
	h := handler.NewDistributorHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Get("/distributors", h.GetDistributors)
	r.Post("/distributors", h.CreateDistributor)
	r.Get("/distributors/{id}", h.GetDistributor)
	r.Put("/distributors/{id}", h.UpdateDistributor)
	r.Delete("/distributors/{id}", h.DeleteDistributor)
	return r
}

const distributorBody = `{"name":"librería el ateneo srl","email":"ventas@ateneo.bo","phone":"44251234","address":"Av. Heroínas N350"}`

func TestDistributorHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockDistributorService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(d *distributor.Distributor) bool {
			return d.Name == "librería el ateneo srl" && d.Phone == "44251234"
		})).Return(validation.OK(&distributor.Distributor{ID: uuid.New(), Name: "Librería El Ateneo SRL"}), nil)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/distributors", strings.NewReader(distributorBody)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Librería El Ateneo SRL")
	})

	t.Run("taken name is a field error", func(t *testing.T) {
		var errs validation.Errors
		errs.Add(distributor.FieldName, "Ya existe un distribuidor con este nombre")
		errs.Add(distributor.FieldPhone, "El teléfono debe tener exactamente 8 dígitos")
		svc := new(MockDistributorService)
		svc.On("Create", mock.Anything, mock.Anything).Return(validation.Fail[*distributor.Distributor](errs), nil)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/distributors", strings.NewReader(distributorBody)))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		got := decodeError(t, rec)
		require.Len(t, got.Fields, 2)
		assert.Equal(t, validation.FieldError{Field: "Name", Message: "Ya existe un distribuidor con este nombre"}, got.Fields[0])
		assert.Equal(t, "Phone", got.Fields[1].Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockDistributorService)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/distributors", strings.NewReader(`{"name":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDistributorHandler_ErrorMapping(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		svc := new(MockDistributorService)
		svc.On("GetByID", mock.Anything, id).Return(nil, distributor.ErrDistributorNotFound)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/distributors/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "distributor not found", decodeError(t, rec).Error)
	})

	t.Run("delete", func(t *testing.T) {
		svc := new(MockDistributorService)
		svc.On("Delete", mock.Anything, id).Return(nil)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/distributors/"+id.String(), nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("list failure", func(t *testing.T) {
		svc := new(MockDistributorService)
		svc.On("List", mock.Anything).Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		distributorRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/distributors", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
