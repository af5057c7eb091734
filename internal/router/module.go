package router

import "github.com/gin-gonic/gin"

// Module is a feature unit that knows how to mount its own routes.
type Module interface {
	Register(rg *gin.RouterGroup)
}
