package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles every repository over a single *gorm.DB handle. Services
// receive a Store explicitly and open transactions through WithTx, which hands
// the callback a Store bound to the transaction.
type Store struct {
	db *gorm.DB

	Categorias CategoriaRepository
	Productos  ProductoRepository
	Postres    PostreRepository
	Vinculos   VinculoRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Categorias: NewCategoriaRepository(db),
		Productos:  NewProductoRepository(db),
		Postres:    NewPostreRepository(db),
		Vinculos:   NewVinculoRepository(db),
	}
}

// WithTx runs fn inside a transaction. Returning an error (or panicking)
// rolls everything back.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying handle for health checks.
func (s *Store) DB() *gorm.DB { return s.db }
