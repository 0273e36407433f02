package router

import (
	"cafeteria/internal/config"
	"cafeteria/internal/handler"
	"cafeteria/internal/middleware"
	"cafeteria/internal/repository"
	"cafeteria/internal/service"

	_ "cafeteria/docs" // registers the swagger descriptor

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store(repositories) ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain. Metrics and Logger sit outside Recovery so a
	// panicking request is still counted and logged with its 500.
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Store ────────────────────────────────────────────────────────────────
	store := repository.NewStore(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(store)
	productoSvc := service.NewProductoService(store)
	postreSvc := service.NewPostreService(store)
	busquedaSvc := service.NewBusquedaService(store)
	menuSvc := service.NewMenuService(store)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	postresH := handler.NewPostresHandler(postreSvc)
	busquedaH := handler.NewBusquedaHandler(busquedaSvc)
	menuH := handler.NewMenuHandler(menuSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/buscador", handler.Buscador(cfg.SearchPagePath))

	categorias := r.Group("/categories")
	{
		categorias.GET("", categoriasH.Listar)
		categorias.POST("", categoriasH.Crear)
		categorias.GET("/:id", categoriasH.ObtenerPorID)
		categorias.DELETE("/:id", categoriasH.Eliminar)
	}

	productos := r.Group("/products")
	{
		productos.GET("", productosH.Listar)
		productos.POST("", productosH.Crear)
		productos.GET("/by-category/:category_id", productosH.ListarPorCategoria)
		productos.GET("/:id", productosH.ObtenerPorID)
		productos.GET("/:id/desserts", productosH.ListarPostres)
		productos.PUT("/:id", productosH.Actualizar)
		productos.DELETE("/:id", productosH.Eliminar)
	}

	postres := r.Group("/desserts")
	{
		postres.GET("", postresH.Listar)
		postres.POST("", postresH.Crear)
		postres.GET("/by-category/:category_id", postresH.ListarPorCategoria)
		postres.GET("/:id", postresH.ObtenerPorID)
		postres.GET("/:id/products", postresH.ListarProductos)
		postres.PUT("/:id", postresH.Actualizar)
		postres.DELETE("/:id", postresH.Eliminar)
	}

	r.GET("/search/:term", busquedaH.Buscar)
	r.GET("/menu/pdf", menuH.DescargarPDF)

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
