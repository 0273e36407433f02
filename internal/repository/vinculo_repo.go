package repository

import (
	"context"

	"cafeteria/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VinculoRepository manages the product ↔ dessert join relation by id only.
type VinculoRepository interface {
	// Link is idempotent: linking an existing pair is a no-op.
	Link(ctx context.Context, productoID, postreID uint) error
	Unlink(ctx context.Context, productoID, postreID uint) error
	UnlinkProducto(ctx context.Context, productoID uint) error
	UnlinkPostre(ctx context.Context, postreID uint) error
	PostreIDs(ctx context.Context, productoID uint) ([]uint, error)
	ProductoIDs(ctx context.Context, postreID uint) ([]uint, error)
}

type vinculoRepo struct{ db *gorm.DB }

func NewVinculoRepository(db *gorm.DB) VinculoRepository { return &vinculoRepo{db: db} }

func (r *vinculoRepo) Link(ctx context.Context, productoID, postreID uint) error {
	v := model.ProductoPostre{ProductoID: productoID, PostreID: postreID}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&v).Error
}

func (r *vinculoRepo) Unlink(ctx context.Context, productoID, postreID uint) error {
	return r.db.WithContext(ctx).
		Where("producto_id = ? AND postre_id = ?", productoID, postreID).
		Delete(&model.ProductoPostre{}).Error
}

func (r *vinculoRepo) UnlinkProducto(ctx context.Context, productoID uint) error {
	return r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Delete(&model.ProductoPostre{}).Error
}

func (r *vinculoRepo) UnlinkPostre(ctx context.Context, postreID uint) error {
	return r.db.WithContext(ctx).
		Where("postre_id = ?", postreID).
		Delete(&model.ProductoPostre{}).Error
}

func (r *vinculoRepo) PostreIDs(ctx context.Context, productoID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&model.ProductoPostre{}).
		Where("producto_id = ?", productoID).
		Order("postre_id ASC").Pluck("postre_id", &ids).Error
	return ids, err
}

func (r *vinculoRepo) ProductoIDs(ctx context.Context, postreID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&model.ProductoPostre{}).
		Where("postre_id = ?", postreID).
		Order("producto_id ASC").Pluck("producto_id", &ids).Error
	return ids, err
}
