package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"cafeteria/internal/apierror"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the root endpoint.
const Version = "3.0.0"

// Health returns a JSON health check response.
// Checks DB connectivity; never exposes credentials or internals.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}

// Root GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bienvenido a la API de Cafetería El Rincón Mexicano - v3.0",
		"version": Version,
	})
}

// Buscador serves the static search page when it exists on disk.
func Buscador(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, apierror.New("Archivo buscador.html no encontrado"))
			return
		}
		c.File(path)
	}
}
