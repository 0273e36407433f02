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

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.PaginaFilter) ([]dto.ProductoResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ProductoResponse, error)
	ListarPostresRelacionados(ctx context.Context, id uint) ([]dto.PostreResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error)
}

type productoService struct {
	store *repository.Store
}

func NewProductoService(store *repository.Store) ProductoService {
	return &productoService{store: store}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:      req.Nombre,
		CategoriaID: *req.CategoriaID,
		Descripcion: req.Descripcion,
		Precio:      *req.Precio,
		Disponible:  true,
	}
	if req.Disponible != nil {
		p.Disponible = *req.Disponible
	}

	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		if err := verificarCategoria(ctx, tx, p.CategoriaID); err != nil {
			return err
		}
		if err := tx.Productos.Create(ctx, p); err != nil {
			return err
		}
		return enlazarPostres(ctx, tx, p.ID, req.PostresIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, p.ID)
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := buscarProducto(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.PaginaFilter) ([]dto.ProductoResponse, error) {
	list, err := s.store.Productos.List(ctx, filter.Skip, filter.Limit)
	if err != nil {
		return nil, err
	}
	return mapProductos(list), nil
}

func (s *productoService) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ProductoResponse, error) {
	list, err := s.store.Productos.ListByCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	return mapProductos(list), nil
}

func (s *productoService) ListarPostresRelacionados(ctx context.Context, id uint) ([]dto.PostreResponse, error) {
	if _, err := buscarProducto(ctx, s.store, id); err != nil {
		return nil, err
	}
	ids, err := s.store.Vinculos.PostreIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	postres, err := s.store.Postres.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapPostres(postres), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		p, err := buscarProducto(ctx, tx, id)
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
		if req.Precio != nil {
			p.Precio = *req.Precio
		}
		if req.Disponible != nil {
			p.Disponible = *req.Disponible
		}
		if err := tx.Productos.Update(ctx, p); err != nil {
			return err
		}

		if req.PostresIDs == nil {
			return nil
		}
		if err := tx.Vinculos.UnlinkProducto(ctx, id); err != nil {
			return err
		}
		return enlazarPostres(ctx, tx, id, *req.PostresIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *productoService) Eliminar(ctx context.Context, id uint) (*dto.EliminadoResponse, error) {
	var nombre string
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		p, err := buscarProducto(ctx, tx, id)
		if err != nil {
			return err
		}
		nombre = p.Nombre
		if err := tx.Vinculos.UnlinkProducto(ctx, id); err != nil {
			return err
		}
		return tx.Productos.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.EliminadoResponse{Message: fmt.Sprintf("Producto %s eliminado correctamente", nombre)}, nil
}

// ── helpers shared with the dessert service ──────────────────────────────────

func buscarProducto(ctx context.Context, store *repository.Store, id uint) (*model.Producto, error) {
	p, err := store.Productos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProductoNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func verificarCategoria(ctx context.Context, store *repository.Store, id uint) error {
	ok, err := store.Categorias.Existe(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errCategoriaNoEncontrada
	}
	return nil
}

// enlazarPostres links the product to every id that resolves to a stored
// dessert. Unknown ids are dropped without error.
func enlazarPostres(ctx context.Context, store *repository.Store, productoID uint, postresIDs []uint) error {
	ids, err := store.Postres.ExistingIDs(ctx, postresIDs)
	if err != nil {
		return err
	}
	for _, postreID := range ids {
		if err := store.Vinculos.Link(ctx, productoID, postreID); err != nil {
			return err
		}
	}
	return nil
}

// enlazarProductos is the dessert-side counterpart of enlazarPostres.
func enlazarProductos(ctx context.Context, store *repository.Store, postreID uint, productosIDs []uint) error {
	ids, err := store.Productos.ExistingIDs(ctx, productosIDs)
	if err != nil {
		return err
	}
	for _, productoID := range ids {
		if err := store.Vinculos.Link(ctx, productoID, postreID); err != nil {
			return err
		}
	}
	return nil
}
