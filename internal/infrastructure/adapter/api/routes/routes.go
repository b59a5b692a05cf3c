package routes

import (
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	User       *handler.UserHandler
	Poll       *handler.PollHandler
	Vote       *handler.VoteHandler
	Withdrawal *handler.WithdrawalHandler
	Admin      *handler.AdminHandler
	Health     *handler.HealthHandler

	// Sandbox is set only when the simulated deferred gateway is in use
	Sandbox *handler.SandboxHandler
}

// Security holds the credentials the auth middlewares check against
type Security struct {
	AdminKeyHash  string
	WebhookSecret string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, security Security, timeProvider coreport.TimeProvider, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/register", h.User.Register)
	api.GET("/polls", h.Poll.ListPolls)
	api.GET("/polls/:id", h.Poll.GetPoll)
	api.GET("/polls/:id/results", h.Poll.GetResults)
	api.POST("/payments/webhook",
		middleware.VerifyWebhookSignature(security.WebhookSecret, timeProvider, logger),
		h.Vote.Webhook)

	// Routes acting for the caller in X-User-ID
	user := api.Group("", middleware.RequireUser())
	{
		user.GET("/auth/me", h.User.Me)
		user.PUT("/profile/upi", h.User.UpdateUPI)
		user.GET("/wallet", h.User.GetWallet)
		user.GET("/transactions", h.User.ListTransactions)

		user.POST("/polls/:id/purchase", h.Vote.Purchase)
		user.POST("/polls/:id/vote", h.Vote.Vote)
		user.GET("/polls/:id/my-result", h.Poll.GetMyResult)
		user.POST("/payments/:orderId/confirm", h.Vote.ConfirmPayment)

		user.POST("/withdrawal/request", h.Withdrawal.Request)
		user.GET("/withdrawal/history", h.Withdrawal.History)
	}

	// Operator routes
	admin := api.Group("/admin", middleware.RequireAdmin(security.AdminKeyHash, logger))
	{
		admin.GET("/polls", h.Poll.ListPolls)
		admin.POST("/polls", h.Poll.CreatePoll)
		admin.PUT("/polls/:id", h.Poll.UpdatePoll)
		admin.DELETE("/polls/:id", h.Poll.DeletePoll)
		admin.POST("/polls/:id/result", h.Poll.DeclareResult)

		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/transactions", h.Admin.ListTransactions)
		admin.GET("/analytics", h.Admin.Analytics)
		admin.GET("/wallets/:userId/reconcile", h.Admin.Reconcile)

		admin.GET("/withdrawals", h.Withdrawal.List)
		admin.PUT("/withdrawals/:id/approve", h.Withdrawal.Approve)
		admin.PUT("/withdrawals/:id/reject", h.Withdrawal.Reject)

		if h.Sandbox != nil {
			admin.POST("/sandbox/orders/:orderId/resolve", h.Sandbox.ResolveOrder)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// recovery first so it also covers the other middlewares
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID(ids))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
