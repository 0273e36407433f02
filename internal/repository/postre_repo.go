package repository

import (
	"context"

	"cafeteria/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostreRepository mirrors ProductoRepository for desserts.
type PostreRepository interface {
	Create(ctx context.Context, p *model.Postre) error
	FindByID(ctx context.Context, id uint) (*model.Postre, error)
	List(ctx context.Context, skip, limit int) ([]model.Postre, error)
	ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Postre, error)
	ListByIDs(ctx context.Context, ids []uint) ([]model.Postre, error)
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	Update(ctx context.Context, p *model.Postre) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	ListDisponibles(ctx context.Context) ([]model.Postre, error)
	Search(ctx context.Context, pattern string) ([]model.Postre, error)
}

type postreRepo struct{ db *gorm.DB }

func NewPostreRepository(db *gorm.DB) PostreRepository { return &postreRepo{db: db} }

func (r *postreRepo) Create(ctx context.Context, p *model.Postre) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *postreRepo) FindByID(ctx context.Context, id uint) (*model.Postre, error) {
	var p model.Postre
	err := r.db.WithContext(ctx).Preload("Categoria").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postreRepo) List(ctx context.Context, skip, limit int) ([]model.Postre, error) {
	var postres []model.Postre
	err := r.db.WithContext(ctx).Preload("Categoria").
		Order("id ASC").Offset(skip).Limit(limit).
		Find(&postres).Error
	return postres, err
}

func (r *postreRepo) ListByCategoria(ctx context.Context, categoriaID uint) ([]model.Postre, error) {
	var postres []model.Postre
	err := r.db.WithContext(ctx).Preload("Categoria").
		Where("categoria_id = ?", categoriaID).
		Order("id ASC").Find(&postres).Error
	return postres, err
}

func (r *postreRepo) ListByIDs(ctx context.Context, ids []uint) ([]model.Postre, error) {
	postres := []model.Postre{}
	if len(ids) == 0 {
		return postres, nil
	}
	err := r.db.WithContext(ctx).Preload("Categoria").
		Where("id IN ?", ids).Order("id ASC").Find(&postres).Error
	return postres, err
}

func (r *postreRepo) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Postre{}).
		Where("id IN ?", ids).Order("id ASC").Pluck("id", &found).Error
	return found, err
}

func (r *postreRepo) Update(ctx context.Context, p *model.Postre) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *postreRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Postre{}, id).Error
}

func (r *postreRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Postre{}).Count(&n).Error
	return n, err
}

// ListDisponibles returns every available item ordered by category then name.
func (r *postreRepo) ListDisponibles(ctx context.Context) ([]model.Postre, error) {
	var postres []model.Postre
	err := r.db.WithContext(ctx).
		Where("disponible = ?", true).
		Order("categoria_id ASC, nombre ASC").
		Find(&postres).Error
	return postres, err
}

func (r *postreRepo) Search(ctx context.Context, pattern string) ([]model.Postre, error) {
	var postres []model.Postre
	err := r.db.WithContext(ctx).
		Joins("JOIN categorias ON categorias.id = postres.categoria_id").
		Where(
			"postres.texto_busqueda LIKE ? OR categorias.texto_busqueda LIKE ?",
			pattern, pattern,
		).
		Preload("Categoria").
		Find(&postres).Error
	return postres, err
}
