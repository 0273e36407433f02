package model

import "time"

// Categoria groups products and desserts (e.g. "taco", "pastel").
type Categoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:50;uniqueIndex;not null"`
	Descripcion string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Lower-cased nombre and descripcion, kept by BeforeSave.
	TextoBusqueda string `gorm:"type:text;not null;default:''"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
