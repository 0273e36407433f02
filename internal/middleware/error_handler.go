package middleware

import (
	"net/http"
	"time"

	"cafeteria/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const mensajeErrorInterno = "Error interno del servidor"

// requestLog starts an event carrying the request id of c.
func requestLog(c *gin.Context, level zerolog.Level) *zerolog.Event {
	return log.WithLevel(level).Str("request_id", c.GetString(RequestIDKey))
}

// ErrorHandler logs the last error a handler attached with c.Error. Handlers
// normally answer first; when none did, the client gets the generic 500 body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		requestLog(c, zerolog.ErrorLevel).
			Str("route", c.FullPath()).
			Str("method", c.Request.Method).
			Err(last.Err).
			Msg("request failed")

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(mensajeErrorInterno))
		}
	}
}

// Recovery turns a handler panic into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestLog(c, zerolog.ErrorLevel).
				Str("route", c.FullPath()).
				Interface("panic", r).
				Msg("handler panicked")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(mensajeErrorInterno))
		}()
		c.Next()
	}
}

// Logger writes one access line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		requestLog(c, level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
