// Package seed loads the starter catalog. Each table is only filled when it
// is empty, so running it on every start is harmless; it is not guarded
// against two processes starting at the same time.
package seed

import (
	"context"
	"fmt"

	"cafeteria/internal/model"
	"cafeteria/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type categoriaSeed struct{ nombre, descripcion string }

type productoSeed struct {
	nombre, categoria, descripcion string
	precio                         float64
}

type postreSeed struct {
	nombre, descripcion, categoria string
	rebanadas                      int
	precioRebanada                 float64
}

var categorias = []categoriaSeed{
	{"torta", "Tortas tradicionales mexicanas"},
	{"cuernito", "Cuernitos y croissants horneados"},
	{"quesadilla", "Quesadillas de tortilla de maíz"},
	{"taco", "Tacos variados"},
	{"baguette", "Baguettes gourmet"},
	{"bebida", "Bebidas frías y calientes"},
	{"postre", "Postres y dulces"},
	{"pastel", "Pasteles completos y por rebanada"},
	{"postre_frio", "Postres fríos y helados"},
}

var productos = []productoSeed{
	{"Torta de Jamón", "torta", "Torta con jamón, queso, aguacate, jitomate y lechuga en pan telera", 45},
	{"Torta de Milanesa", "torta", "Torta con milanesa de res empanizada, aguacate, jitomate, lechuga y frijoles", 60},
	{"Torta Cubana", "torta", "Torta con jamón, queso, milanesa, salchicha, chorizo, huevo, aguacate y frijoles", 85},
	{"Cuernito de Jamón y Queso", "cuernito", "Croissant horneado relleno de jamón y queso gouda derretido", 38},
	{"Cuernito 3 Quesos", "cuernito", "Croissant horneado relleno de queso manchego, gouda y philadelphia", 42},
	{"Quesadilla de Queso", "quesadilla", "Tortilla de maíz hecha a mano rellena de queso Oaxaca", 25},
	{"Quesadilla de Hongos", "quesadilla", "Tortilla de maíz hecha a mano rellena de hongos guisados y queso", 30},
	{"Quesadilla de Tinga", "quesadilla", "Tortilla de maíz hecha a mano rellena de tinga de pollo y queso", 35},
	{"Taco de Pastor", "taco", "Tortilla de maíz con carne de cerdo marinada en adobo y piña", 18},
	{"Taco de Suadero", "taco", "Tortilla de maíz con carne de res suadero, cilantro y cebolla", 20},
	{"Taco de Barbacoa", "taco", "Tortilla de maíz con carne de barbacoa de borrego, cilantro y cebolla", 25},
	{"Baguette Italiano", "baguette", "Pan baguette con jamón serrano, queso provolone, tomate y pesto", 65},
	{"Baguette de Pollo", "baguette", "Pan baguette con pollo a la plancha, queso manchego, lechuga y jitomate", 60},
	{"Café Americano", "bebida", "Café de grano recién molido, 12 oz", 30},
	{"Agua de Horchata", "bebida", "Agua fresca de arroz con canela y vainilla, 16 oz", 25},
	{"Limonada", "bebida", "Limonada natural con un toque de menta, 16 oz", 28},
	{"Rebanada de Pastel de Chocolate", "postre", "Rebanada individual de pastel de chocolate", 45},
	{"Flan Individual", "postre", "Porción individual de flan napolitano", 35},
}

var postres = []postreSeed{
	{"Pastel de Chocolate", "Delicioso pastel de chocolate con ganache de chocolate oscuro y decorado con fresas", "pastel", 12, 45},
	{"Cheesecake de Fresa", "Tarta de queso cremosa con base de galleta y cobertura de fresas naturales", "pastel", 10, 50},
	{"Pastel Tres Leches", "Esponjoso pastel bañado en tres tipos de leche con crema chantilly y canela", "pastel", 16, 35},
	{"Tarta de Manzana", "Clásica tarta de manzana con masa crujiente y manzanas caramelizadas", "pastel", 8, 40},
	{"Pastel de Zanahoria", "Húmedo pastel de zanahoria con nueces y betún de queso crema", "pastel", 12, 42},
	{"Tiramisú", "Postre italiano con capas de bizcocho bañado en café, mascarpone y cacao", "postre_frio", 9, 55},
	{"Pastel Red Velvet", "Suave pastel de terciopelo rojo con betún de queso crema", "pastel", 14, 48},
	{"Flan Napolitano Familiar", "Flan casero de tamaño familiar con caramelo y vainilla", "postre_frio", 10, 25},
}

// Pairs linked when the desserts are first seeded: (producto, postre).
var vinculos = [][2]string{
	{"Rebanada de Pastel de Chocolate", "Pastel de Chocolate"},
}

// Run fills every empty table inside one transaction.
func Run(ctx context.Context, store *repository.Store) error {
	return store.WithTx(ctx, func(tx *repository.Store) error {
		if err := seedCategorias(ctx, tx); err != nil {
			return err
		}
		ids, err := categoriaIDs(ctx, tx)
		if err != nil {
			return err
		}
		productoIDs, err := seedProductos(ctx, tx, ids)
		if err != nil {
			return err
		}
		return seedPostres(ctx, tx, ids, productoIDs)
	})
}

func seedCategorias(ctx context.Context, tx *repository.Store) error {
	n, err := tx.Categorias.Contar(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, c := range categorias {
		if err := tx.Categorias.Crear(ctx, &model.Categoria{Nombre: c.nombre, Descripcion: c.descripcion}); err != nil {
			return fmt.Errorf("seed categoria %q: %w", c.nombre, err)
		}
	}
	log.Info().Int("count", len(categorias)).Msg("seeded categorias")
	return nil
}

func categoriaIDs(ctx context.Context, tx *repository.Store) (map[string]uint, error) {
	list, err := tx.Categorias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(list))
	for _, c := range list {
		ids[c.Nombre] = c.ID
	}
	return ids, nil
}

// seedProductos returns the ids of the products it created, by name.
func seedProductos(ctx context.Context, tx *repository.Store, cats map[string]uint) (map[string]uint, error) {
	created := map[string]uint{}
	n, err := tx.Productos.Count(ctx)
	if err != nil || n > 0 {
		return created, err
	}
	for _, s := range productos {
		catID, ok := cats[s.categoria]
		if !ok {
			// The categories table was seeded by someone else without this one.
			log.Warn().Str("categoria", s.categoria).Str("producto", s.nombre).Msg("seed: categoria missing, skipping")
			continue
		}
		p := &model.Producto{
			Nombre:      s.nombre,
			CategoriaID: catID,
			Descripcion: s.descripcion,
			Precio:      decimal.NewFromFloat(s.precio),
			Disponible:  true,
		}
		if err := tx.Productos.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed producto %q: %w", s.nombre, err)
		}
		created[p.Nombre] = p.ID
	}
	log.Info().Int("count", len(created)).Msg("seeded productos")
	return created, nil
}

func seedPostres(ctx context.Context, tx *repository.Store, cats map[string]uint, productoIDs map[string]uint) error {
	n, err := tx.Postres.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	created := map[string]uint{}
	for _, s := range postres {
		catID, ok := cats[s.categoria]
		if !ok {
			log.Warn().Str("categoria", s.categoria).Str("postre", s.nombre).Msg("seed: categoria missing, skipping")
			continue
		}
		p := &model.Postre{
			Nombre:         s.nombre,
			Descripcion:    s.descripcion,
			CategoriaID:    catID,
			Rebanadas:      s.rebanadas,
			PrecioRebanada: decimal.NewFromFloat(s.precioRebanada),
			Disponible:     true,
		}
		p.RecalcularTotal()
		if err := tx.Postres.Create(ctx, p); err != nil {
			return fmt.Errorf("seed postre %q: %w", s.nombre, err)
		}
		created[p.Nombre] = p.ID
	}
	log.Info().Int("count", len(created)).Msg("seeded postres")

	for _, v := range vinculos {
		productoID, ok1 := productoIDs[v[0]]
		postreID, ok2 := created[v[1]]
		if !ok1 || !ok2 {
			continue
		}
		if err := tx.Vinculos.Link(ctx, productoID, postreID); err != nil {
			return fmt.Errorf("seed vinculo %q ↔ %q: %w", v[0], v[1], err)
		}
	}
	return nil
}

// IsEmpty reports whether no categories exist yet.
func IsEmpty(ctx context.Context, store *repository.Store) (bool, error) {
	n, err := store.Categorias.Contar(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
