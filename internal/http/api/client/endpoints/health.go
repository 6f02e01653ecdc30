package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/athan/internal/http/api"
)

func HealthModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/health", func(ctx *gin.Context) (any, *api.APIError) {
			return gin.H{"status": "ok"}, nil
		})
	})
}
