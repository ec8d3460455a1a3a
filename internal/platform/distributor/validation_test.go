package distributor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

func TestValidate_Name(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Librería SRL", nil},
		{"Distribuidora Andina S.A.", nil},
		{"Kipus & Hijos LTDA", nil},
		{"Editorial Don Bosco", nil},
		{"Gómez-Rojas", nil},
		{"SRL", []string{"Debe contener al menos una palabra de 3 letras o más"}},
		{"Libros@Bolivia", []string{"La palabra 'Libros@Bolivia' solo puede contener letras, números y puntos y no otros caracteres"}},
		{"Pé-Ñ@ EIRL", []string{
			"La palabra 'Pé-Ñ@' solo puede contener letras y números separados por &, - o '",
			"Debe contener al menos una palabra de 3 letras o más",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(&Distributor{Name: tt.name}).For(FieldName))
		})
	}
}

func TestValidate_AllFields(t *testing.T) {
	errs := Validate(&Distributor{
		Name:    "Librería SRL",
		Email:   "ventas@libreria.bo",
		Phone:   "44251234",
		Address: "Calle Corrales S/N",
	})
	assert.Empty(t, errs)

	errs = Validate(&Distributor{})
	assert.ElementsMatch(t, []string{FieldName, FieldEmail, FieldPhone, FieldAddress}, fieldsOf(errs))
}

func TestNormalize(t *testing.T) {
	d := &Distributor{
		Name:    "librería  el ateneo srl",
		Email:   "Ventas@Ateneo.BO",
		Phone:   "44251234",
		Address: "av.  heroínas  nro. 350",
	}

	Normalize(d)

	assert.Equal(t, "Librería El Ateneo SRL", d.Name)
	assert.Equal(t, "ventas@ateneo.bo", d.Email)
	assert.Equal(t, "av. heroínas nro. 350", d.Address)
}

func TestNormalize_InvalidLeftUntouched(t *testing.T) {
	d := &Distributor{
		Name:    "librería  el ateneo srl",
		Email:   "Ventas@Ateneo.BO",
		Phone:   "4425",
		Address: "av.  heroínas  nro. 350",
	}
	want := *d

	Normalize(d)

	assert.Equal(t, want, *d)
}

func fieldsOf(errs validation.Errors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}
