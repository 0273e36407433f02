package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"cafeteria/internal/dto"
	"cafeteria/internal/infra"
	"cafeteria/internal/model"
	"cafeteria/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := infra.NewDatabase("sqlite://"+filepath.Join(t.TempDir(), "test.db"), infra.PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	return repository.NewStore(db)
}

func seedCategoria(t *testing.T, store *repository.Store, nombre, descripcion string) *model.Categoria {
	t.Helper()
	c := &model.Categoria{Nombre: nombre, Descripcion: descripcion}
	require.NoError(t, store.Categorias.Crear(context.Background(), c))
	return c
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func ptr[T any](v T) *T { return &v }

func productoReq(nombre string, categoriaID uint, precio string, postres ...uint) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:      nombre,
		CategoriaID: &categoriaID,
		Descripcion: "descripcion de " + nombre,
		Precio:      dec(precio),
		PostresIDs:  postres,
	}
}

func postreReq(nombre string, categoriaID uint, rebanadas int, precioRebanada string, productos ...uint) dto.CrearPostreRequest {
	return dto.CrearPostreRequest{
		Nombre:         nombre,
		Descripcion:    "descripcion de " + nombre,
		CategoriaID:    &categoriaID,
		Rebanadas:      rebanadas,
		PrecioRebanada: dec(precioRebanada),
		ProductosIDs:   productos,
	}
}

func postreIDs(list []dto.PostreResponse) []uint {
	ids := make([]uint, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}

func productoIDs(list []dto.ProductoResponse) []uint {
	ids := make([]uint, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}
