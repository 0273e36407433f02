package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string           `json:"name"        validate:"required,min=1,max=100"`
	CategoriaID *uint            `json:"category_id" validate:"required"`
	Descripcion string           `json:"description"`
	Precio      *decimal.Decimal `json:"price"       validate:"required,min=0"`
	Disponible  *bool            `json:"available"`
	PostresIDs  []uint           `json:"dessert_ids"`
}

// ActualizarProductoRequest only touches the fields present in the body.
// PostresIDs distinguishes "absent or null" (links untouched) from an explicit
// list, including [], which replaces every link of the product.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"name"        validate:"omitempty,min=1,max=100"`
	CategoriaID *uint            `json:"category_id"`
	Descripcion *string          `json:"description"`
	Precio      *decimal.Decimal `json:"price"       validate:"omitempty,min=0"`
	Disponible  *bool            `json:"available"`
	PostresIDs  *[]uint          `json:"dessert_ids"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type PaginaFilter struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          uint               `json:"id"`
	Nombre      string             `json:"name"`
	CategoriaID uint               `json:"category_id"`
	Descripcion string             `json:"description"`
	Precio      decimal.Decimal    `json:"price"`
	Disponible  bool               `json:"available"`
	Categoria   *CategoriaResponse `json:"category,omitempty"`
}

// EliminadoResponse confirms a delete by naming the removed record.
type EliminadoResponse struct {
	Message string `json:"message"`
}
