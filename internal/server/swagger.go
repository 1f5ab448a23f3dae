package server

import (
	"ptstudio/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwagger serves the API reference at /swagger/index.html. With the doc
// host cleared, requests from the UI go to whichever address served it.
func SetupSwagger(r *gin.Engine) {
	docs.SwaggerInfo.Host = ""
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DocExpansion("none"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
