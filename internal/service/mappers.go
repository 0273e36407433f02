package service

import (
	"cafeteria/internal/dto"
	"cafeteria/internal/model"
)

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}

func mapCategoriaRef(c *model.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	r := mapCategoria(*c)
	return &r
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		CategoriaID: p.CategoriaID,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Disponible:  p.Disponible,
		Categoria:   mapCategoriaRef(p.Categoria),
	}
}

func mapProductos(list []model.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, mapProducto(p))
	}
	return out
}

func mapPostre(p model.Postre) dto.PostreResponse {
	return dto.PostreResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		CategoriaID:    p.CategoriaID,
		Rebanadas:      p.Rebanadas,
		PrecioRebanada: p.PrecioRebanada,
		PrecioTotal:    p.PrecioTotal,
		Disponible:     p.Disponible,
		Categoria:      mapCategoriaRef(p.Categoria),
	}
}

func mapPostres(list []model.Postre) []dto.PostreResponse {
	out := make([]dto.PostreResponse, 0, len(list))
	for _, p := range list {
		out = append(out, mapPostre(p))
	}
	return out
}
