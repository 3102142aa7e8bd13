package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "accountsvc/internal/app"
	"accountsvc/internal/bootstrap"
	"accountsvc/internal/repository"
	"accountsvc/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Prototype CORS posture: every origin, method, and header.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"*"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	// accounts stays nil when the store is down so the service can
	// answer "database not available" instead of crashing.
	var accounts appsvc.AccountStore
	if app.Store != nil {
		accounts = repository.NewAccountRepository(app.Store)
	}
	authService := appsvc.NewAuthService(accounts, app.Config.Auth.BcryptCost)
	authHandler := handler.NewAuthHandler(authService)
	diagnostics := handler.NewDiagnosticsHandler(app)

	router.GET("/", handler.Root)
	router.GET("/api/hello", handler.Hello)
	router.GET("/test", diagnostics.Check)

	authGroup := router.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)

	return router
}
