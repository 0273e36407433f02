package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearPostreRequest accepts total_price for compatibility with older clients;
// the stored value is always slices * price_per_slice.
type CrearPostreRequest struct {
	Nombre         string           `json:"name"            validate:"required,min=1,max=100"`
	Descripcion    string           `json:"description"`
	CategoriaID    *uint            `json:"category_id"     validate:"required"`
	Rebanadas      int              `json:"slices"          validate:"required,min=1"`
	PrecioRebanada *decimal.Decimal `json:"price_per_slice" validate:"required,min=0"`
	PrecioTotal    *decimal.Decimal `json:"total_price"     validate:"omitempty,min=0"`
	Disponible     *bool            `json:"available"`
	ProductosIDs   []uint           `json:"product_ids"`
}

type ActualizarPostreRequest struct {
	Nombre         *string          `json:"name"            validate:"omitempty,min=1,max=100"`
	Descripcion    *string          `json:"description"`
	CategoriaID    *uint            `json:"category_id"`
	Rebanadas      *int             `json:"slices"          validate:"omitempty,min=1"`
	PrecioRebanada *decimal.Decimal `json:"price_per_slice" validate:"omitempty,min=0"`
	PrecioTotal    *decimal.Decimal `json:"total_price"     validate:"omitempty,min=0"`
	Disponible     *bool            `json:"available"`
	ProductosIDs   *[]uint          `json:"product_ids"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PostreResponse struct {
	ID             uint               `json:"id"`
	Nombre         string             `json:"name"`
	Descripcion    string             `json:"description"`
	CategoriaID    uint               `json:"category_id"`
	Rebanadas      int                `json:"slices"`
	PrecioRebanada decimal.Decimal    `json:"price_per_slice"`
	PrecioTotal    decimal.Decimal    `json:"total_price"`
	Disponible     bool               `json:"available"`
	Categoria      *CategoriaResponse `json:"category,omitempty"`
}
