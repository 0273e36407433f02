package service

import (
	"context"

	"cafeteria/internal/dto"
	"cafeteria/internal/model"
	"cafeteria/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	tipoProducto = "Producto"
	tipoPostre   = "Postre"
	sinCategoria = "Sin categoría"
)

// BusquedaService runs the cross-entity text search.
type BusquedaService interface {
	Buscar(ctx context.Context, termino string) (*dto.BusquedaResponse, error)
}

type busquedaService struct {
	store *repository.Store
}

func NewBusquedaService(store *repository.Store) BusquedaService {
	return &busquedaService{store: store}
}

// Buscar matches termino case-insensitively as a substring of the name or
// description of products and desserts, or of their category.
func (s *busquedaService) Buscar(ctx context.Context, termino string) (*dto.BusquedaResponse, error) {
	pattern := "%" + model.NormalizarBusqueda(termino) + "%"

	var (
		productos []model.Producto
		postres   []model.Postre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productos, err = s.store.Productos.Search(gctx, pattern)
		return err
	})
	g.Go(func() error {
		var err error
		postres, err = s.store.Postres.Search(gctx, pattern)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.BusquedaResponse{
		Termino:   termino,
		Productos: make([]dto.ProductoEncontrado, 0, len(productos)),
		Postres:   make([]dto.PostreEncontrado, 0, len(postres)),
	}
	for _, p := range productos {
		resp.Productos = append(resp.Productos, dto.ProductoEncontrado{
			Tipo:        tipoProducto,
			ID:          p.ID,
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Categoria:   nombreCategoria(p.Categoria),
			Precio:      formatoPrecio(p.Precio),
			Disponible:  formatoDisponible(p.Disponible),
		})
	}
	for _, p := range postres {
		resp.Postres = append(resp.Postres, dto.PostreEncontrado{
			Tipo:           tipoPostre,
			ID:             p.ID,
			Nombre:         p.Nombre,
			Descripcion:    p.Descripcion,
			Categoria:      nombreCategoria(p.Categoria),
			PrecioRebanada: formatoPrecio(p.PrecioRebanada),
			PrecioTotal:    formatoPrecio(p.PrecioTotal),
			Rebanadas:      p.Rebanadas,
			Disponible:     formatoDisponible(p.Disponible),
		})
	}
	resp.TotalResultados = len(resp.Productos) + len(resp.Postres)
	return resp, nil
}

func nombreCategoria(c *model.Categoria) string {
	if c == nil {
		return sinCategoria
	}
	return c.Nombre
}

func formatoDisponible(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
