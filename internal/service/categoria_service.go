package service

import (
	"context"
	"errors"

	"cafeteria/internal/dto"
	"cafeteria/internal/model"
	"cafeteria/internal/repository"

	"gorm.io/gorm"
)

// CategoriaService defines business operations for categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoriaService struct {
	store *repository.Store
}

func NewCategoriaService(store *repository.Store) CategoriaService {
	return &categoriaService{store: store}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	existing, err := s.store.Categorias.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoriaResponse{}, err
	}
	if existing != nil {
		return dto.CategoriaResponse{}, errCategoriaDuplicada
	}

	c := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}
	if err := s.store.Categorias.Crear(ctx, c); err != nil {
		// A concurrent insert can still win the race past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoriaResponse{}, errCategoriaDuplicada
		}
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.store.Categorias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id uint) (dto.CategoriaResponse, error) {
	c, err := s.store.Categorias.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, errCategoriaNoEncontrada
		}
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c), nil
}

// Eliminar refuses to delete a category that is still referenced.
func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	return s.store.WithTx(ctx, func(tx *repository.Store) error {
		ok, err := tx.Categorias.Existe(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return errCategoriaNoEncontrada
		}
		refs, err := tx.Categorias.ContarReferencias(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return errCategoriaEnUso
		}
		return tx.Categorias.Eliminar(ctx, id)
	})
}
