package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Postre is sold whole or by the slice.
// PrecioTotal is derived: Rebanadas * PrecioRebanada. Use RecalcularTotal
// after touching either operand.
type Postre struct {
	ID             uint            `gorm:"primaryKey"`
	Nombre         string          `gorm:"size:100;index;not null"`
	Descripcion    string          `gorm:"type:text"`
	CategoriaID    uint            `gorm:"index;not null"`
	Rebanadas      int             `gorm:"not null"`
	PrecioRebanada decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Disponible     bool            `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Lower-cased nombre and descripcion, kept by BeforeSave.
	TextoBusqueda string `gorm:"type:text;not null;default:''"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Postre) TableName() string { return "postres" }

// RecalcularTotal rounds PrecioRebanada to the column's two places and sets
// PrecioTotal from it, so the stored pair always satisfies the invariant.
func (p *Postre) RecalcularTotal() {
	p.PrecioRebanada = redondearPrecio(p.PrecioRebanada)
	p.PrecioTotal = p.PrecioRebanada.Mul(decimal.NewFromInt(int64(p.Rebanadas)))
}
