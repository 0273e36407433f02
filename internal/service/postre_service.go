package service

import (
	"context"
	"errors"
	"fmt"

	"cafeteria/internal/dto"
	"cafeteria/internal/model"
	"cafeteria/internal/repository"

	"gorm.io/gorm"
)

// PostreService defines the business logic contract for desserts.
// Every write leaves PrecioTotal == Rebanadas * PrecioRebanada.
type PostreService interface {
	Crear(ctx context.Context, req dto.CrearPostreRequest) (*dto.PostreResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.PostreResponse, error)
	Listar(ctx context.Context, filter dto.PaginaFilter) ([]dto.PostreResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.PostreResponse, error)
	ListarProductosRelacionados(ctx context.Context, id uint) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPostreRequest) (*dto.PostreResponse, error)
	Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error)
}

type postreService struct {
	store *repository.Store
}

func NewPostreService(store *repository.Store) PostreService {
	return &postreService{store: store}
}

func (s *postreService) Crear(ctx context.Context, req dto.CrearPostreRequest) (*dto.PostreResponse, error) {
	p := &model.Postre{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		CategoriaID:    *req.CategoriaID,
		Rebanadas:      req.Rebanadas,
		PrecioRebanada: *req.PrecioRebanada,
		Disponible:     true,
	}
	if req.Disponible != nil {
		p.Disponible = *req.Disponible
	}
	// Any total_price sent by the client is discarded.
	p.RecalcularTotal()

	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		if err := verificarCategoria(ctx, tx, p.CategoriaID); err != nil {
			return err
		}
		if err := tx.Postres.Create(ctx, p); err != nil {
			return err
		}
		return enlazarProductos(ctx, tx, p.ID, req.ProductosIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, p.ID)
}

func (s *postreService) ObtenerPorID(ctx context.Context, id uint) (*dto.PostreResponse, error) {
	p, err := buscarPostre(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	resp := mapPostre(*p)
	return &resp, nil
}

func (s *postreService) Listar(ctx context.Context, filter dto.PaginaFilter) ([]dto.PostreResponse, error) {
	list, err := s.store.Postres.List(ctx, filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	return mapPostres(list), nil
}

func (s *postreService) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.PostreResponse, error) {
	list, err := s.store.Postres.ListByCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	return mapPostres(list), nil
}

func (s *postreService) ListarProductosRelacionados(ctx context.Context, id uint) ([]dto.ProductoResponse, error) {
	if _, err := buscarPostre(ctx, s.store, id); err != nil {
		return nil, err
	}
	ids, err := s.store.Vinculos.ProductoIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	productos, err := s.store.Productos.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapProductos(productos), nil
}

func (s *postreService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPostreRequest) (*dto.PostreResponse, error) {
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		p, err := buscarPostre(ctx, tx, id)
		if err != nil {
			return err
		}
		if req.CategoriaID != nil {
			if err := verificarCategoria(ctx, tx, *req.CategoriaID); err != nil {
				return err
			}
			p.CategoriaID = *req.CategoriaID
			p.Categoria = nil
		}
		if req.Nombre != nil {
			p.Nombre = *req.Nombre
		}
		if req.Descripcion != nil {
			p.Descripcion = *req.Descripcion
		}
		if req.Rebanadas != nil {
			p.Rebanadas = *req.Rebanadas
		}
		if req.PrecioRebanada != nil {
			p.PrecioRebanada = *req.PrecioRebanada
		}
		if req.Disponible != nil {
			p.Disponible = *req.Disponible
		}
		// Recomputed from the post-update operands; a supplied total_price
		// never overrides it.
		p.RecalcularTotal()

		if err := tx.Postres.Update(ctx, p); err != nil {
			return err
		}

		if req.ProductosIDs == nil {
			return nil
		}
		if err := tx.Vinculos.UnlinkPostre(ctx, id); err != nil {
			return err
		}
		return enlazarProductos(ctx, tx, id, *req.ProductosIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *postreService) Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error) {
	var nombre string
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		p, err := buscarPostre(ctx, tx, id)
		if err != nil {
			return err
		}
		nombre = p.Nombre
		if err := tx.Vinculos.UnlinkPostre(ctx, id); err != nil {
			return err
		}
		return tx.Postres.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.EliminadoResponse{Message: fmt.Sprintf("Postre %s eliminado correctamente", nombre)}, nil
}

func buscarPostre(ctx context.Context, store *repository.Store, id uint) (*model.Postre, error) {
	p, err := store.Postres.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPostreNoEncontrado
		}
		return nil, err
	}
	return p, nil
}
