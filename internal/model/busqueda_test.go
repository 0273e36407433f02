package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizarBusqueda(t *testing.T) {
	cases := map[string]string{
		"ÉCLAIR DE CAFÉ": "éclair de café",
		"ÑANDÚ":          "ñandú",
		"Taco":           "taco",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizarBusqueda(in), in)
	}
}

func TestBeforeSave(t *testing.T) {
	p := &Producto{Nombre: "ÑOQUIS", Descripcion: "Dulces", Precio: decimal.RequireFromString("10.005")}
	assert.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, "ñoquis\x1fdulces", p.TextoBusqueda)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("10.01")), p.Precio.String())

	d := &Postre{Nombre: "Flan", Rebanadas: 10, PrecioRebanada: decimal.RequireFromString("0.335"), PrecioTotal: decimal.NewFromInt(999)}
	assert.NoError(t, d.BeforeSave(nil))
	assert.True(t, d.PrecioTotal.Equal(decimal.RequireFromString("3.4")), d.PrecioTotal.String())
}
