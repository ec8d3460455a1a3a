package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Field names used in validation errors
const (
	FieldClientID = "ClientID"
	FieldItems    = "Items"
)

// ItemField names the field of the i-th item, e.g. "Items[0].Quantity"
func ItemField(i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", FieldItems, i, name)
}

// Validate returns every rule the sale breaks. A missing client is a field
// error; any other client lookup failure is returned as err.
func Validate(ctx context.Context, s *Sale, clients ClientReader) (validation.Errors, error) {
	var errs validation.Errors

	if s.ClientID == uuid.Nil {
		errs.Add(FieldClientID, "Seleccione un cliente")
	} else {
		c, err := clients.GetByID(ctx, s.ClientID)
		switch {
		case errors.Is(err, client.ErrClientNotFound):
			errs.Add(FieldClientID, "El cliente seleccionado no existe")
		case err != nil:
			return nil, fmt.Errorf("failed to look up client: %w", err)
		case c == nil:
			errs.Add(FieldClientID, "El cliente seleccionado no existe")
		}
	}

	if len(s.Items) == 0 {
		errs.Add(FieldItems, "La venta debe tener al menos un producto")
	}

	seen := make(map[uuid.UUID]bool, len(s.Items))
	for i, it := range s.Items {
		if it.ProductID == uuid.Nil {
			errs.Add(ItemField(i, "ProductID"), "Seleccione un producto")
		} else if seen[it.ProductID] {
			errs.Add(ItemField(i, "ProductID"), "El producto ya fue agregado a la venta")
		}
		seen[it.ProductID] = true

		if it.Quantity <= 0 {
			errs.Add(ItemField(i, "Quantity"), "La cantidad debe ser mayor a 0")
		}
	}
	return errs, nil
}
