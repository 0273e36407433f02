package service_test

import (
	"context"
	"testing"

	"cafeteria/internal/infra"
	"cafeteria/internal/model"
	"cafeteria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuscar_PorDescripcionDeCategoria(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	postres := service.NewPostreService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()

	pasteles := seedCategoria(t, store, "pastel", "Pasteles completos y por rebanada")
	tacos := seedCategoria(t, store, "taco", "Tacos variados")

	_, err := productos.Crear(ctx, productoReq("Porción", pasteles.ID, "45"))
	require.NoError(t, err)
	_, err = postres.Crear(ctx, postreReq("Cheesecake", pasteles.ID, 10, "50"))
	require.NoError(t, err)
	_, err = postres.Crear(ctx, postreReq("Red Velvet", pasteles.ID, 14, "48"))
	require.NoError(t, err)
	_, err = productos.Crear(ctx, productoReq("Pastor", tacos.ID, "18"))
	require.NoError(t, err)

	// Only the category description contains "COMPLETOS".
	resp, err := svc.Buscar(ctx, "COMPLETOS")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETOS", resp.Termino)
	assert.Len(t, resp.Productos, 1)
	assert.Len(t, resp.Postres, 2)
	assert.Equal(t, 3, resp.TotalResultados)
}

func TestBuscar_FormatoDeResultados(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	postres := service.NewPostreService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "postre", "Postres y dulces")

	req := productoReq("Flan Individual", cat.ID, "35")
	req.Disponible = ptr(false)
	_, err := productos.Crear(ctx, req)
	require.NoError(t, err)
	_, err = postres.Crear(ctx, postreReq("Flan Napolitano Familiar", cat.ID, 10, "25"))
	require.NoError(t, err)

	resp, err := svc.Buscar(ctx, "flan")
	require.NoError(t, err)
	require.Len(t, resp.Productos, 1)
	require.Len(t, resp.Postres, 1)

	p := resp.Productos[0]
	assert.Equal(t, "Producto", p.Tipo)
	assert.Equal(t, "$35.00", p.Precio)
	assert.Equal(t, "No", p.Disponible)
	assert.Equal(t, "postre", p.Categoria)

	d := resp.Postres[0]
	assert.Equal(t, "Postre", d.Tipo)
	assert.Equal(t, "$25.00", d.PrecioRebanada)
	assert.Equal(t, "$250.00", d.PrecioTotal)
	assert.Equal(t, 10, d.Rebanadas)
	assert.Equal(t, "Sí", d.Disponible)
	assert.Equal(t, 2, resp.TotalResultados)
}

func TestBuscar_SinResultados(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewBusquedaService(store)
	seedCategoria(t, store, "taco", "Tacos variados")

	resp, err := svc.Buscar(context.Background(), "sushi")
	require.NoError(t, err)
	assert.NotNil(t, resp.Productos)
	assert.NotNil(t, resp.Postres)
	assert.Zero(t, resp.TotalResultados)
}

func TestBuscar_ExcluyeCategoriaInexistente(t *testing.T) {
	store := newTestStore(t)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "taco", "Tacos variados")

	// Bypass the service to plant a dangling reference; FK checks are turned
	// off for this connection only.
	db := store.DB()
	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, store.Productos.Create(ctx, &model.Producto{
		Nombre: "Taco huérfano", CategoriaID: cat.ID + 100, Precio: decimal.NewFromInt(10), Disponible: true,
	}))
	require.NoError(t, store.Productos.Create(ctx, &model.Producto{
		Nombre: "Taco de canasta", CategoriaID: cat.ID, Precio: decimal.NewFromInt(12), Disponible: true,
	}))

	resp, err := svc.Buscar(ctx, "taco")
	require.NoError(t, err)
	require.Len(t, resp.Productos, 1)
	assert.Equal(t, "Taco de canasta", resp.Productos[0].Nombre)
}

func TestBuscar_MayusculasAcentuadas(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "postre", "Postres y dulces")

	_, err := productos.Crear(ctx, productoReq("ÉCLAIR DE CAFÉ", cat.ID, "40"))
	require.NoError(t, err)

	for _, termino := range []string{"éclair", "ÉCLAIR", "Éclair", "ÉCLAIR DE CAFÉ", "de café"} {
		resp, err := svc.Buscar(ctx, termino)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalResultados, "termino %q", termino)
	}
}

func TestBuscar_CategoriaConMayusculasAcentuadas(t *testing.T) {
	store := newTestStore(t)
	postres := service.NewPostreService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "temporada", "DULCES DE ÑANDÚ Y ÉPOCA")

	_, err := postres.Crear(ctx, postreReq("Rosca", cat.ID, 12, "20"))
	require.NoError(t, err)

	resp, err := svc.Buscar(ctx, "ñandú")
	require.NoError(t, err)
	require.Len(t, resp.Postres, 1)
	assert.Equal(t, "temporada", resp.Postres[0].Categoria)

	resp, err = svc.Buscar(ctx, "época")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalResultados)
}

func TestBuscar_NoCruzaEntreNombreYDescripcion(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "bebida", "Bebidas")

	req := productoReq("Limonada", cat.ID, "28")
	req.Descripcion = "Menta fresca"
	_, err := productos.Crear(ctx, req)
	require.NoError(t, err)

	resp, err := svc.Buscar(ctx, "limonadamenta")
	require.NoError(t, err)
	assert.Zero(t, resp.TotalResultados)
}

func TestBuscar_FilasAnterioresSeReindexanAlMigrar(t *testing.T) {
	store := newTestStore(t)
	productos := service.NewProductoService(store)
	svc := service.NewBusquedaService(store)
	ctx := context.Background()
	cat := seedCategoria(t, store, "postre", "Postres y dulces")

	p, err := productos.Crear(ctx, productoReq("ÑOQUIS DULCES", cat.ID, "30"))
	require.NoError(t, err)

	// Simulate a row stored before the search column existed.
	db := store.DB()
	require.NoError(t, db.Model(&model.Producto{}).Where("id = ?", p.ID).UpdateColumn("texto_busqueda", "").Error)
	resp, err := svc.Buscar(ctx, "ñoquis")
	require.NoError(t, err)
	require.Zero(t, resp.TotalResultados)

	require.NoError(t, infra.RunMigrations(db))

	resp, err = svc.Buscar(ctx, "ñoquis")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalResultados)
}
