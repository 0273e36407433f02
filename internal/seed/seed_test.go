package seed_test

import (
	"context"
	"path/filepath"
	"testing"

	"cafeteria/internal/infra"
	"cafeteria/internal/model"
	"cafeteria/internal/repository"
	"cafeteria/internal/seed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := infra.NewDatabase("sqlite://"+filepath.Join(t.TempDir(), "seed.db"), infra.PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	return repository.NewStore(db)
}

func counts(t *testing.T, store *repository.Store) (int64, int64, int64) {
	t.Helper()
	ctx := context.Background()
	c, err := store.Categorias.Contar(ctx)
	require.NoError(t, err)
	p, err := store.Productos.Count(ctx)
	require.NoError(t, err)
	d, err := store.Postres.Count(ctx)
	require.NoError(t, err)
	return c, p, d
}

func TestRun_CargaCatalogoInicial(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	empty, err := seed.IsEmpty(ctx, store)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, seed.Run(ctx, store))

	c, p, d := counts(t, store)
	assert.EqualValues(t, 9, c)
	assert.EqualValues(t, 18, p)
	assert.EqualValues(t, 8, d)

	empty, err = seed.IsEmpty(ctx, store)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestRun_Idempotente(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, store))
	require.NoError(t, seed.Run(ctx, store))

	c, p, d := counts(t, store)
	assert.EqualValues(t, 9, c)
	assert.EqualValues(t, 18, p)
	assert.EqualValues(t, 8, d)
}

func TestRun_PreciosTotalesYVinculo(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	require.NoError(t, seed.Run(ctx, store))

	postres, err := store.Postres.List(ctx, 0, 100)
	require.NoError(t, err)
	var chocolate *model.Postre
	for i := range postres {
		p := postres[i]
		want := p.PrecioRebanada.Mul(decimal.NewFromInt(int64(p.Rebanadas)))
		assert.True(t, p.PrecioTotal.Equal(want), "%s: total %s, want %s", p.Nombre, p.PrecioTotal, want)
		if p.Nombre == "Pastel de Chocolate" {
			chocolate = &postres[i]
		}
	}
	require.NotNil(t, chocolate)
	assert.True(t, chocolate.PrecioTotal.Equal(decimal.NewFromInt(540)))

	productoIDs, err := store.Vinculos.ProductoIDs(ctx, chocolate.ID)
	require.NoError(t, err)
	require.Len(t, productoIDs, 1)

	rebanada, err := store.Productos.FindByID(ctx, productoIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "Rebanada de Pastel de Chocolate", rebanada.Nombre)
}

func TestRun_SoloLlenaTablasVacias(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	// A catalog someone already started: categories present, nothing else.
	require.NoError(t, store.Categorias.Crear(ctx, &model.Categoria{Nombre: "pastel", Descripcion: "Pasteles"}))
	require.NoError(t, seed.Run(ctx, store))

	c, p, d := counts(t, store)
	assert.EqualValues(t, 1, c)
	assert.Zero(t, p, "no seeded product is filed under pastel")
	assert.EqualValues(t, 6, d)
}
