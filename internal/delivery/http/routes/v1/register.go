package v1

import (
	"mentorlink/internal/config"
	"mentorlink/internal/database"
	"mentorlink/internal/delivery/http/handler"
	"mentorlink/internal/delivery/http/middleware"
	"mentorlink/internal/domain/matching"
	"mentorlink/internal/infrastructure/cache"
	"mentorlink/internal/infrastructure/persistence/postgres"
	"mentorlink/internal/pkg/jwt"
	"mentorlink/internal/pkg/logger"
	"mentorlink/internal/usecase"
	"mentorlink/internal/ws"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Log    logger.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	validate := validator.New()
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(deps.DB)
	notifier := ws.NewNotifier(deps.Hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, deps.Cache)
	matchUC := usecase.NewMatchUsecase(userRepo, deps.Cache, matching.DefaultWeights, deps.Config.Redis.TTL)
	connUC := usecase.NewConnectionUsecase(userRepo, deps.Cache, notifier)
	notifUC := usecase.NewNotificationUsecase(userRepo)

	authHandler := handler.NewAuthHandler(authUC, validate)
	userHandler := handler.NewUserHandler(userUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	connHandler := handler.NewConnectionHandler(connUC, validate)
	notifHandler := handler.NewNotificationHandler(notifUC)
	wsHandler := ws.NewHandler(deps.Hub, jwtSvc, deps.Log)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	r.Get("/ws", wsHandler.HandleEventsWS)

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/users"))
	matchHandler.RegisterRoutes(protected.Group("/matches"))
	connHandler.RegisterRoutes(protected.Group("/connections"))
	notifHandler.RegisterRoutes(protected.Group("/notifications"))
}
