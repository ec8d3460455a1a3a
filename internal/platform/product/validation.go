package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kislikjeka/bookstore/internal/platform/textrules"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/money"
)

// Field names used in validation errors
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldPrice       = "Price"
	FieldStock       = "Stock"
	FieldCategoryID  = "CategoryID"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// MaxPrice is the highest accepted unit price
var MaxPrice = decimal.NewFromInt(9999)

const (
	msgNameTooLong        = "El nombre no puede superar los 100 caracteres"
	msgDescriptionTooLong = "La descripción no puede superar los 500 caracteres"
	msgPriceRange         = "El precio debe ser mayor a 0 y menor o igual a 9999"
	msgPriceScale         = "El precio puede tener como máximo 2 decimales"
	msgStockNegative      = "El stock no puede ser negativo"
	msgCategoryRequired   = "Seleccione una categoría"
	msgCategoryNotFound   = "La categoría seleccionada no existe"
)

// Validate returns every rule the product breaks. The category reference is
// resolved through categories; a failed lookup is reported as a field error.
func Validate(ctx context.Context, p *Product, categories CategoryLookup) validation.Errors {
	errs := fieldErrors(p)
	errs.AddAll(FieldCategoryID, categoryErrors(ctx, p.CategoryID, categories))
	return errs
}

// fieldErrors checks everything except the category reference
func fieldErrors(p *Product) validation.Errors {
	var errs validation.Errors
	errs.AddAll(FieldName, nameErrors(p.Name))
	errs.AddAll(FieldDescription, descriptionErrors(p.Description))
	errs.AddAll(FieldPrice, priceErrors(p.Price))
	errs.AddAll(FieldStock, stockErrors(p.Stock))
	return errs
}

// Normalize rewrites a product whose own fields are valid to canonical form.
// The category reference is not checked here.
func Normalize(p *Product) {
	if fieldErrors(p).HasErrors() {
		return
	}
	p.Name = textrules.CanonicalProductName(p.Name)
	p.Description = textrules.CanonicalSentence(p.Description)
	p.Price = money.Round(p.Price)
}

func nameErrors(s string) []string {
	errs := textrules.GetProductNameErrors(s)
	if !textrules.MaxLen(s, maxNameLength) {
		errs = append(errs, msgNameTooLong)
	}
	return errs
}

func descriptionErrors(s string) []string {
	errs := textrules.GetProductDescriptionErrors(s)
	if !textrules.MaxLen(s, maxDescriptionLength) {
		errs = append(errs, msgDescriptionTooLong)
	}
	return errs
}

func priceErrors(d decimal.Decimal) []string {
	if !money.InRange(d, decimal.Zero, MaxPrice) {
		return []string{msgPriceRange}
	}
	if !d.Equal(money.Round(d)) {
		return []string{msgPriceScale}
	}
	return nil
}

func stockErrors(n int) []string {
	if n < 0 {
		return []string{msgStockNegative}
	}
	return nil
}

func categoryErrors(ctx context.Context, id uuid.UUID, categories CategoryLookup) []string {
	if id == uuid.Nil {
		return []string{msgCategoryRequired}
	}
	c, err := categories.Read(ctx, id)
	if err != nil || c == nil {
		return []string{msgCategoryNotFound}
	}
	return nil
}
