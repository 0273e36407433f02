package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre      string `json:"name"        validate:"required,min=1,max=50"`
	Descripcion string `json:"description" validate:"max=2000"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"name"`
	Descripcion string `json:"description"`
}
