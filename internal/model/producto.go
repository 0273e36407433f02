package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a single sellable item with a flat price.
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Nombre      string          `gorm:"size:100;index;not null"`
	CategoriaID uint            `gorm:"index;not null"`
	Descripcion string          `gorm:"type:text"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Disponible  bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Lower-cased nombre and descripcion, kept by BeforeSave.
	TextoBusqueda string `gorm:"type:text;not null;default:''"`

	// Only populated when explicitly preloaded.
	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Producto) TableName() string { return "productos" }
