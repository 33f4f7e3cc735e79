package components

import (
	"loyalty-ledger/internal/handler"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewRewardHandler,
		api.NewRaffleHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(registerRoutes),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

type routeParams struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Auth      *api.AuthHandler
	Account   *api.AccountHandler
	Reward    *api.RewardHandler
	Raffle    *api.RaffleHandler
	AuthMw    *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Logger    *middleware.Logger
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Auth:    p.Auth,
			Account: p.Account,
			Reward:  p.Reward,
			Raffle:  p.Raffle,
		},
		handler.Middlewares{
			Auth:      p.AuthMw,
			RateLimit: p.RateLimit,
			Logger:    p.Logger,
		},
	)
}
