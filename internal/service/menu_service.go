package service

import (
	"context"
	"io"

	"cafeteria/internal/infra"
	"cafeteria/internal/repository"
)

const tituloMenu = "Cafetería El Rincón Mexicano"

// MenuService renders the printable menu of everything currently available.
type MenuService interface {
	GenerarPDF(ctx context.Context, w io.Writer) error
}

type menuService struct {
	store *repository.Store
}

func NewMenuService(store *repository.Store) MenuService {
	return &menuService{store: store}
}

func (s *menuService) GenerarPDF(ctx context.Context, w io.Writer) error {
	categorias, err := s.store.Categorias.Listar(ctx)
	if err != nil {
		return err
	}
	productos, err := s.store.Productos.ListDisponibles(ctx)
	if err != nil {
		return err
	}
	postres, err := s.store.Postres.ListDisponibles(ctx)
	if err != nil {
		return err
	}

	secciones := make([]infra.SeccionMenu, len(categorias))
	idx := make(map[uint]int, len(categorias))
	for i, c := range categorias {
		secciones[i].Categoria = c
		idx[c.ID] = i
	}
	for _, p := range productos {
		if i, ok := idx[p.CategoriaID]; ok {
			secciones[i].Productos = append(secciones[i].Productos, p)
		}
	}
	for _, p := range postres {
		if i, ok := idx[p.CategoriaID]; ok {
			secciones[i].Postres = append(secciones[i].Postres, p)
		}
	}
	return infra.GenerarMenuPDF(w, tituloMenu, secciones)
}
