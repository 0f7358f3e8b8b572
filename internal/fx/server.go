package fx

import (
	"context"

	"Feira/config"
	"Feira/internal/infrastructure"
	"Feira/internal/logger"
	"Feira/internal/middleware"
	"Feira/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
	resourceCounter *infrastructure.ResourceCounter,
) {
	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		users := private.Group("/users")
		{
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.DELETE("/me", handler.DeleteUser)
		}

		lists := private.Group("/lists")
		{
			lists.POST("", middleware.CheckListLimit(resourceCounter, cfg.Lists.MaxPerUser), handler.CreateList)
			lists.GET("", handler.GetLists)
			lists.GET("/:id", handler.GetList)
			lists.DELETE("/:id", handler.DeleteList)
			lists.GET("/:id/events", handler.StreamListEvents)
			lists.GET("/:id/recipe-query", handler.GetRecipeQuery)

			lists.POST("/:id/items", handler.AddItems)
			lists.POST("/:id/items/clear-checked", handler.ClearChecked)
			lists.PATCH("/:id/items/:itemId", handler.UpdateItem)
			lists.PATCH("/:id/items/:itemId/toggle", handler.ToggleItem)
			lists.DELETE("/:id/items/:itemId", handler.DeleteItem)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
