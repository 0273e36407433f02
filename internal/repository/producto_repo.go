package repository

import (
	"context"

	"cafeteria/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context, skip, limit int) ([]model.Producto, error)
	ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Producto, error)
	ListByIDs(ctx context.Context, ids []uint) ([]model.Producto, error)
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	ListDisponibles(ctx context.Context) ([]model.Producto, error)

	// Search matches a LIKE pattern, already folded with
	// model.NormalizarBusqueda, against the texto_busqueda of the product and
	// of its category. Products whose category does not exist never match.
	Search(ctx context.Context, pattern string) ([]model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, skip, limit int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").
		Order("id ASC").Offset(skip).Limit(limit).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").
		Where("categoria_id = ?", categoriaID).
		Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListByIDs(ctx context.Context, ids []uint) ([]model.Producto, error) {
	productos := []model.Producto{}
	if len(ids) == 0 {
		return productos, nil
	}
	err := r.db.WithContext(ctx).Preload("Categoria").
		Where("id IN ?", ids).Order("id ASC").Find(&productos).Error
	return productos, err
}

// ExistingIDs filters ids down to those that reference a stored product.
func (r *productoRepo) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error
	return found, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&n).Error
	return n, err
}

// ListDisponibles returns every available item ordered by category then name.
func (r *productoRepo) ListDisponibles(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("disponible = ?", true).
		Order("categoria_id ASC, nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Search(ctx context.Context, pattern string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Joins("JOIN categorias ON categorias.id = productos.categoria_id").
		Where(
			"productos.texto_busqueda LIKE ? OR categorias.texto_busqueda LIKE ?",
			pattern, pattern,
		).
		Preload("Categoria").
		Find(&productos).Error
	return productos, err
}
