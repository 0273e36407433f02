package infra

import (
	"fmt"
	"strings"

	"cafeteria/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolOptions bounds the connection pool. Ignored for SQLite, which always
// runs on a single connection.
type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

// NewDatabase opens a GORM connection and runs migrations.
//
// The DSN selects the driver: "sqlite://<path>", "file:<path>" or ":memory:"
// use the pure Go SQLite driver, anything else is handed to the Postgres
// driver (pgx).
func NewDatabase(dsn string, pool PoolOptions) (*gorm.DB, error) {
	dialector, isSQLite := dialectorFor(dsn)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if pool.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		}
		if pool.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		}
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(withForeignKeys(strings.TrimPrefix(dsn, "sqlite://"))), true
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return sqlite.Open(withForeignKeys(dsn)), true
	default:
		return postgres.Open(dsn), false
	}
}

// withForeignKeys turns on FK enforcement, which SQLite leaves off by default.
func withForeignKeys(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// RunMigrations creates or updates every table. Join table last so its
// foreign keys find both parents. Rows written before texto_busqueda existed
// get it filled in.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.Producto{},
		&model.Postre{},
		&model.ProductoPostre{},
	); err != nil {
		return err
	}
	if err := reindexar(db, func(c model.Categoria) (uint, string) {
		return c.ID, model.TextoBusqueda(c.Nombre, c.Descripcion)
	}); err != nil {
		return err
	}
	if err := reindexar(db, func(p model.Producto) (uint, string) {
		return p.ID, model.TextoBusqueda(p.Nombre, p.Descripcion)
	}); err != nil {
		return err
	}
	return reindexar(db, func(p model.Postre) (uint, string) {
		return p.ID, model.TextoBusqueda(p.Nombre, p.Descripcion)
	})
}

// reindexar fills texto_busqueda on rows that lack it. UpdateColumn skips
// hooks and timestamps.
func reindexar[T any](db *gorm.DB, texto func(T) (uint, string)) error {
	var rows []T
	if err := db.Where("texto_busqueda = ?", "").Find(&rows).Error; err != nil {
		return fmt.Errorf("reindexar: %w", err)
	}
	for _, row := range rows {
		id, t := texto(row)
		if err := db.Model(new(T)).Where("id = ?", id).UpdateColumn("texto_busqueda", t).Error; err != nil {
			return fmt.Errorf("reindexar %d: %w", id, err)
		}
	}
	return nil
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
