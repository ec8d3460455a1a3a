package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/report"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("get: %w", category.ErrCategoryNotFound), http.StatusNotFound},
		{category.ErrCategoryInUse, http.StatusConflict},
		{user.ErrLastAdmin, http.StatusConflict},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
		{report.ErrUnknownType, http.StatusBadRequest},
		{fmt.Errorf("x: %w", report.ErrGeneration), http.StatusInternalServerError},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toAppError(tt.err).Status(), tt.err.Error())
	}

	var fields validation.Errors
	fields.Add("Name", "El nombre es obligatorio")
	got := toAppError(fields)
	assert.Equal(t, http.StatusUnprocessableEntity, got.Status())
	assert.Equal(t, fields, got.Fields)
}

func TestWithOverrides(t *testing.T) {
	var errs validation.Errors
	errs.Add("Name", "a")
	errs.Add("Price", "b")
	errs.Add("Price", "c")
	errs.Add("Stock", "d")

	var overrides validation.Errors
	overrides.Add("Price", "x")
	overrides.Add("CategoryID", "y")

	assert.Equal(t, validation.Errors{
		{Field: "Name", Message: "a"},
		{Field: "Price", Message: "x"},
		{Field: "Stock", Message: "d"},
		{Field: "CategoryID", Message: "y"},
	}, withOverrides(errs, overrides))

	assert.Equal(t, errs, withOverrides(errs, nil))
}
