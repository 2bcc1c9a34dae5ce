package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger verifica a conexão com o banco.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GET /health
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.String(http.StatusOK, "ok")
			return
		}
		if err := db.Ping(c.Request.Context()); err != nil {
			RespondError(c, "db indisponível", http.StatusServiceUnavailable)
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
