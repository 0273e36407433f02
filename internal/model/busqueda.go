package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// separadorBusqueda joins the indexed fields so a pattern cannot match
// across two of them.
const separadorBusqueda = "\x1f"

// NormalizarBusqueda lower-cases s with full Unicode rules. SQL LOWER() only
// folds ASCII on SQLite, so search text is folded here instead, both when it
// is stored and when it is queried.
func NormalizarBusqueda(s string) string {
	return cases.Lower(language.Und).String(s)
}

// TextoBusqueda is the value stored in the texto_busqueda column.
func TextoBusqueda(campos ...string) string {
	return NormalizarBusqueda(strings.Join(campos, separadorBusqueda))
}

// redondearPrecio matches the two decimal places of the price columns.
func redondearPrecio(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func (c *Categoria) BeforeSave(*gorm.DB) error {
	c.TextoBusqueda = TextoBusqueda(c.Nombre, c.Descripcion)
	return nil
}

func (p *Producto) BeforeSave(*gorm.DB) error {
	p.Precio = redondearPrecio(p.Precio)
	p.TextoBusqueda = TextoBusqueda(p.Nombre, p.Descripcion)
	return nil
}

func (p *Postre) BeforeSave(*gorm.DB) error {
	p.RecalcularTotal()
	p.TextoBusqueda = TextoBusqueda(p.Nombre, p.Descripcion)
	return nil
}
