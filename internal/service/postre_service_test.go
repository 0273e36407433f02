package service_test

import (
	"context"
	"testing"

	"cafeteria/internal/dto"
	"cafeteria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostre_CrearDescartaPrecioTotalInconsistente(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	req := postreReq("Pastel de Chocolate", cat.ID, 10, "5")
	req.PrecioTotal = dec("999")
	created, err := svc.Crear(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.PrecioTotal.Equal(decimal.NewFromInt(50)), "total = %s", created.PrecioTotal)

	got, err := svc.ObtenerPorID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.PrecioTotal.Equal(decimal.NewFromInt(50)), "stored total = %s", got.PrecioTotal)
	assert.True(t, got.Disponible)
}

func TestPostre_ActualizarRebanadasRecalculaTotal(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	created, err := svc.Crear(ctx, postreReq("Tres Leches", cat.ID, 10, "5"))
	require.NoError(t, err)

	updated, err := svc.Actualizar(ctx, created.ID, dto.ActualizarPostreRequest{Rebanadas: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Rebanadas)
	assert.True(t, updated.PrecioRebanada.Equal(decimal.NewFromInt(5)))
	assert.True(t, updated.PrecioTotal.Equal(decimal.NewFromInt(60)), "total = %s", updated.PrecioTotal)
}

func TestPostre_ActualizarPrecioRebanadaRecalculaTotal(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	created, err := svc.Crear(ctx, postreReq("Red Velvet", cat.ID, 14, "48"))
	require.NoError(t, err)

	updated, err := svc.Actualizar(ctx, created.ID, dto.ActualizarPostreRequest{PrecioRebanada: dec("50.25")})
	require.NoError(t, err)
	assert.True(t, updated.PrecioTotal.Equal(decimal.RequireFromString("703.5")), "total = %s", updated.PrecioTotal)
}

func TestPostre_ActualizarIgnoraPrecioTotalSuministrado(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	created, err := svc.Crear(ctx, postreReq("Flan", cat.ID, 10, "25"))
	require.NoError(t, err)

	updated, err := svc.Actualizar(ctx, created.ID, dto.ActualizarPostreRequest{
		Nombre:      ptr("Flan Napolitano"),
		PrecioTotal: dec("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Flan Napolitano", updated.Nombre)
	assert.True(t, updated.PrecioTotal.Equal(decimal.NewFromInt(250)), "total = %s", updated.PrecioTotal)
}

func TestPostre_CrearConCategoriaInexistente(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()

	_, err := svc.Crear(ctx, postreReq("Sin casa", 55, 8, "10"))
	assert.ErrorIs(t, err, service.ErrNotFound)

	n, err := store.Postres.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostre_EnlacesDesdeElPostre(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	postres := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	p1, err := productos.Crear(ctx, productoReq("Rebanada", cat.ID, "45"))
	require.NoError(t, err)
	p2, err := productos.Crear(ctx, productoReq("Café", cat.ID, "30"))
	require.NoError(t, err)

	d, err := postres.Crear(ctx, postreReq("Pastel de Chocolate", cat.ID, 12, "45", p1.ID, 8888))
	require.NoError(t, err)

	rel, err := postres.ListarProductosRelacionados(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{p1.ID}, productoIDs(rel))

	ids := []uint{p2.ID}
	_, err = postres.Actualizar(ctx, d.ID, dto.ActualizarPostreRequest{ProductosIDs: &ids})
	require.NoError(t, err)

	rel, err = postres.ListarProductosRelacionados(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{p2.ID}, productoIDs(rel))

	fromP1, err := productos.ListarPostresRelacionados(ctx, p1.ID)
	require.NoError(t, err)
	assert.Empty(t, fromP1)
}

func TestPostre_Eliminar(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	postres := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "postre_frio", "Postres fríos")

	d, err := postres.Crear(ctx, postreReq("Tiramisú", cat.ID, 9, "55"))
	require.NoError(t, err)
	p, err := productos.Crear(ctx, productoReq("Espresso", cat.ID, "30", d.ID))
	require.NoError(t, err)

	resp, err := postres.Eliminar(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Postre Tiramisú eliminado correctamente", resp.Message)

	rel, err := productos.ListarPostresRelacionados(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, rel)

	_, err = postres.ObtenerPorID(ctx, d.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Equal(t, "Postre no encontrado", err.Error())
}

func TestPostre_PrecioRebanadaSeRedondeaAntesDelTotal(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewPostreService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "pastel", "Pasteles")

	created, err := svc.Crear(ctx, postreReq("Mil Hojas", cat.ID, 10, "0.335"))
	require.NoError(t, err)
	assert.True(t, created.PrecioRebanada.Equal(decimal.RequireFromString("0.34")), "price_per_slice = %s", created.PrecioRebanada)
	assert.True(t, created.PrecioTotal.Equal(decimal.RequireFromString("3.40")), "total = %s", created.PrecioTotal)

	updated, err := svc.Actualizar(ctx, created.ID, dto.ActualizarPostreRequest{PrecioRebanada: dec("12.344")})
	require.NoError(t, err)
	assert.True(t, updated.PrecioRebanada.Equal(decimal.RequireFromString("12.34")))
	assert.True(t, updated.PrecioTotal.Equal(decimal.RequireFromString("123.40")))
	assert.True(t, updated.PrecioTotal.Equal(updated.PrecioRebanada.Mul(decimal.NewFromInt(int64(updated.Rebanadas)))))
}
