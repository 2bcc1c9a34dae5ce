package controllers

import (
	"errors"
	"net/http"

	"licencas/loader"
	"licencas/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondWarning é o aviso não fatal de visão vazia: nada para exportar.
func RespondWarning(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"aviso": msg})
}

// statusFor traduz os erros do painel em status HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loader.ErrDataAccess):
		return http.StatusServiceUnavailable
	case errors.Is(err, report.ErrDateParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, report.ErrEmptyResult):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, loader.ErrDataAccess):
		return "Não foi possível carregar as licenças: " + err.Error()
	case errors.Is(err, report.ErrDateParse):
		return "Licença com validade inválida: " + err.Error()
	}
	return err.Error()
}

func respondRenderError(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("render error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	RespondError(c, messageFor(err), code)
}
