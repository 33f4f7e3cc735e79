package handler

import (
	"net/http"

	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Account *api.AccountHandler
	Reward  *api.RewardHandler
	Raffle  *api.RaffleHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Logger    *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customer := []gin.HandlerFunc{mw.Auth.RequireCustomer()}
	staff := []gin.HandlerFunc{mw.Auth.RequireStaff()}
	limited := func(guards []gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, guards...), mw.RateLimit.Handler())
	}
	idempotent := func(guards []gin.HandlerFunc) []gin.HandlerFunc {
		return append(limited(guards), middleware.IdempotencyKey())
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimit.Handler()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(mw.Auth.RequireAuth())

		accounts := authed.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Account.List, Mw: customer},
				{Method: http.MethodPost, Path: "/accruals", Handler: h.Account.Accrue, Mw: limited(staff)},
				{Method: http.MethodPost, Path: "/adjustments", Handler: h.Account.Adjust, Mw: limited(staff)},
				{Method: http.MethodGet, Path: "/:businessId", Handler: h.Account.Get, Mw: customer},
				{Method: http.MethodGet, Path: "/:businessId/history", Handler: h.Account.History, Mw: customer},
			})
		}

		businesses := authed.Group("/businesses/:businessId")
		{
			addRoutes(businesses, []route{
				{Method: http.MethodGet, Path: "/rewards", Handler: h.Reward.List},
				{Method: http.MethodGet, Path: "/raffles", Handler: h.Raffle.List},
			})
		}

		rewards := authed.Group("/rewards")
		{
			addRoutes(rewards, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reward.Create, Mw: limited(staff)},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reward.Update, Mw: limited(staff)},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: h.Reward.Redeem, Mw: idempotent(customer)},
			})
		}

		raffles := authed.Group("/raffles")
		{
			addRoutes(raffles, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Raffle.Create, Mw: limited(staff)},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Raffle.Get},
				{Method: http.MethodPost, Path: "/:id/tickets", Handler: h.Raffle.BuyTicket, Mw: idempotent(customer)},
				{Method: http.MethodDelete, Path: "/:id/tickets", Handler: h.Raffle.ReturnTickets, Mw: limited(customer)},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Raffle.Close, Mw: limited(staff)},
				{Method: http.MethodPost, Path: "/:id/draw", Handler: h.Raffle.Draw, Mw: limited(staff)},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
