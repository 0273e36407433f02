package repository

import (
	"context"

	"cafeteria/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Existe(ctx context.Context, id uint) (bool, error)
	ContarReferencias(ctx context.Context, id uint) (int64, error)
	Contar(ctx context.Context) (int64, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Categoria{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// ContarReferencias counts products and desserts pointing at the category.
func (r *categoriaRepository) ContarReferencias(ctx context.Context, id uint) (int64, error) {
	var productos, postres int64
	if err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("categoria_id = ?", id).Count(&productos).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Postre{}).Where("categoria_id = ?", id).Count(&postres).Error; err != nil {
		return 0, err
	}
	return productos + postres, nil
}

func (r *categoriaRepository) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Categoria{}).Count(&n).Error
	return n, err
}

func (r *categoriaRepository) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, id).Error
}
