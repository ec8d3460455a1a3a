package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/platform/distributor"
	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/platform/sale"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/report"
	apperr "github.com/kislikjeka/bookstore/internal/shared/errors"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// respondValidation sends 422 with every field failure
func respondValidation(w http.ResponseWriter, errs validation.Errors) {
	respondJSON(w, ErrorResponse{Error: "validation failed", Fields: errs}, http.StatusUnprocessableEntity)
}

// responder is embedded by handlers that need to log failures they hide
// behind a generic 500.
type responder struct {
	logger *logger.Logger
}

// fail maps err to a status and message. Errors without a known mapping are
// logged and reported as internal.
func (h responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	appErr := toAppError(err)
	if len(appErr.Fields) > 0 {
		h.invalid(w, r, appErr.Fields)
		return
	}
	if appErr.Status() >= http.StatusInternalServerError {
		h.logger.WithContext(r.Context()).WithError(err).Error("request failed", "code", appErr.Code)
	}
	respondError(w, appErr.Message, appErr.Status())
}

// invalid answers 422 with every field failure
func (h responder) invalid(w http.ResponseWriter, r *http.Request, errs validation.Errors) {
	h.logger.WithContext(r.Context()).Debug("validation failed", "fields", len(errs), "first", errs[0].Field)
	respondValidation(w, errs)
}

// toAppError translates domain sentinels into coded application errors
func toAppError(err error) *apperr.AppError {
	if appErr := apperr.GetAppError(err); appErr != nil {
		return appErr
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		return apperr.Validation(fields)
	}

	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return apperr.NotFound("category")
	case errors.Is(err, client.ErrClientNotFound):
		return apperr.NotFound("client")
	case errors.Is(err, product.ErrProductNotFound):
		return apperr.NotFound("product")
	case errors.Is(err, distributor.ErrDistributorNotFound):
		return apperr.NotFound("distributor")
	case errors.Is(err, user.ErrUserNotFound):
		return apperr.NotFound("user")
	case errors.Is(err, sale.ErrSaleNotFound):
		return apperr.NotFound("sale")

	case errors.Is(err, category.ErrCategoryInUse):
		return apperr.Conflict("category has products")
	case errors.Is(err, product.ErrProductSold):
		return apperr.Conflict("product has been sold")
	case errors.Is(err, user.ErrLastAdmin):
		return apperr.Conflict("cannot remove the last admin")
	case errors.Is(err, user.ErrUserAlreadyExists),
		errors.Is(err, category.ErrDuplicateName),
		errors.Is(err, client.ErrDuplicateEmail):
		return apperr.Conflict("already exists")

	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid username or password")

	case errors.Is(err, category.ErrInvalidID),
		errors.Is(err, client.ErrInvalidID),
		errors.Is(err, product.ErrInvalidID),
		errors.Is(err, distributor.ErrInvalidID),
		errors.Is(err, user.ErrInvalidID):
		return apperr.BadRequest("invalid ID")
	case errors.Is(err, sale.ErrInvalidPeriod):
		return apperr.BadRequest(sale.ErrInvalidPeriod.Error())
	case errors.Is(err, report.ErrUnknownType):
		return apperr.BadRequest("format must be pdf or excel")

	case errors.Is(err, report.ErrGeneration):
		return apperr.Report(err)
	}

	return apperr.Internal("internal server error", err)
}

// decodeJSON reads the body into dst and runs its validate tags. Tag
// failures come back as validation.Errors keyed by struct field name.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate request: %w", err)
		}
		var errs validation.Errors
		for _, fe := range verrs {
			errs.Add(fe.StructField(), tagMessage(fe))
		}
		return apperr.Validation(errs)
	}
	return nil
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "oneof":
		return "Valor no permitido"
	case "min":
		return fmt.Sprintf("Debe contener al menos %s elemento(s)", fe.Param())
	default:
		return "Valor inválido"
	}
}

// parseID reads the {id} URL parameter
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid ID")
	}
	return id, nil
}

// parseOptionalID accepts an empty string as uuid.Nil so domain validation
// can report the missing reference as a field error.
func parseOptionalID(s string) (uuid.UUID, bool) {
	if s == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

// withOverrides replaces the messages of every field listed in overrides,
// keeping the position of the field's first failure.
func withOverrides(errs, overrides validation.Errors) validation.Errors {
	if len(overrides) == 0 {
		return errs
	}
	var out validation.Errors
	emitted := make(map[string]bool)
	for _, fe := range errs {
		if !overrides.Has(fe.Field) {
			out = append(out, fe)
			continue
		}
		if !emitted[fe.Field] {
			out.AddAll(fe.Field, overrides.For(fe.Field))
			emitted[fe.Field] = true
		}
	}
	for _, fe := range overrides {
		if !emitted[fe.Field] {
			out = append(out, fe)
		}
	}
	return out
}
