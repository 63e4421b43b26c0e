package internal

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/BUka228/ProgressQuestWeb/docs"
	"github.com/BUka228/ProgressQuestWeb/internal/handler"
	"github.com/BUka228/ProgressQuestWeb/internal/middleware"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
)

type Backend struct {
	R *gin.Engine
}

// Register builds the gin engine and mounts every self-registered handler
// manager on the public, protected and admin route groups.
func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()

	// Health check for the deployment probes
	s.R.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	s.registerService(conf)

	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

func (b *Backend) registerService(conf *handler.RegisterConfig) {
	// Enable CORS for the frontend dev server in debug mode
	if gin.Mode() == gin.DebugMode {
		fe := config.GetConfig().FrontendURL
		if fe != "" {
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{fe}
			corsConf.AllowHeaders = append(corsConf.AllowHeaders, "Authorization")
			b.R.Use(cors.New(corsConf))
		}
	}

	managers := make([]handler.Manager, 0, len(handler.Registers))
	for _, register := range handler.Registers {
		managers = append(managers, register(conf))
	}

	publicRouter := b.R.Group("")

	protectedRouter := b.R.Group("/v1")
	protectedRouter.Use(middleware.AuthProtected())

	adminRouter := b.R.Group("/v1/admin")
	adminRouter.Use(middleware.AuthProtected(), middleware.AuthAdmin())

	for _, mgr := range managers {
		mgr.RegisterPublic(publicRouter.Group(mgr.GetName()))
		mgr.RegisterProtected(protectedRouter.Group(mgr.GetName()))
		mgr.RegisterAdmin(adminRouter.Group(mgr.GetName()))
	}
}
