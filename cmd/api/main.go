package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	adminUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
	pollUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/poll"
	settlementUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/settlement"
	userUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/user"
	voteUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/vote"
	withdrawalUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/withdrawal"

	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/payment"
	timeProvider "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()

	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp)
	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Minute)
	if _, err := dbManager.Connect(startCtx); err != nil {
		cancelStart()
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := dbManager.Migrate(startCtx); err != nil {
		cancelStart()
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	cancelStart()
	defer func() { _ = dbManager.Close() }()

	uow := dbManager.CreateUnitOfWork()
	manager := ledger.NewManager(appLogger, tp, cfg.Ledger.QueueSize, cfg.Ledger.QueueIdleTimeout)
	poster := ledger.NewPoster(uow, ids, tp, appLogger)

	gateway, err := payment.NewGateway(cfg.Payment.Mode, cfg.Payment.GatewayTimeout, ids, appLogger)
	if err != nil {
		appLogger.Error("Failed to create payment gateway", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	adminNotifier := newNotifier(cfg, appLogger)

	// Use cases
	users := userUseCase.NewUserUseCase(uow, ids, tp, appLogger)
	polls := pollUseCase.NewPollUseCase(uow, manager, ids, tp, appLogger)
	votes := voteUseCase.NewVoteUseCase(uow, manager, poster, gateway, adminNotifier, ids, tp, appLogger,
		entity.Funding(cfg.Payment.Funding))
	settlements := settlementUseCase.NewSettlementUseCase(uow, manager, poster, adminNotifier, tp, appLogger)
	withdrawals := withdrawalUseCase.NewWithdrawalUseCase(uow, manager, poster, adminNotifier, ids, tp, appLogger,
		cfg.Withdrawal.FeeBasisPoints)
	admin := adminUseCase.NewAdminUseCase(uow, poster, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, ids, tp, cfg.Server.AllowedOrigins)
	handlers := routes.Handlers{
		User:       handler.NewUserHandler(users, appLogger),
		Poll:       handler.NewPollHandler(polls, settlements, appLogger),
		Vote:       handler.NewVoteHandler(votes, appLogger),
		Withdrawal: handler.NewWithdrawalHandler(withdrawals, appLogger),
		Admin:      handler.NewAdminHandler(admin, appLogger),
		Health:     handler.NewHealthHandler(dbManager, tp, appLogger),
	}
	if sandbox, ok := payment.SandboxOf(gateway); ok {
		appLogger.Warn("Sandbox payment gateway active; checkout is resolved through the admin sandbox route", nil)
		handlers.Sandbox = handler.NewSandboxHandler(sandbox, appLogger)
	}
	routes.SetupRoutes(router, handlers, routes.Security{
		AdminKeyHash:  cfg.Auth.AdminKeyHash,
		WebhookSecret: cfg.Payment.WebhookSecret,
	}, tp, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"payment": cfg.Payment.Mode,
			"funding": cfg.Payment.Funding,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// stop taking requests before draining the per-key queues
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	appLogger.Info("Shutting down ledger queues...", map[string]any{"active_keys": manager.ActiveKeys()})
	manager.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// newNotifier sends operator events to Telegram when configured and to the log otherwise
func newNotifier(cfg *config.Config, appLogger core.Logger) external.Notifier {
	tg := cfg.Notifier.Telegram
	if !tg.Enabled {
		return notifier.NewLogNotifier(appLogger)
	}

	n, err := notifier.NewTelegramNotifier(tg.Token, tg.ChatID, appLogger)
	if err != nil {
		appLogger.Warn("Telegram notifier unavailable, falling back to log", map[string]any{"error": err.Error()})
		return notifier.NewLogNotifier(appLogger)
	}
	return n
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Ledger.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "ledger.lockTimeoutMs")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}
	if cfg.Notifier.Telegram.Enabled && cfg.Notifier.Telegram.Token == "" {
		missingConfigs = append(missingConfigs, "notifier.telegram.token (or PW_TELEGRAM_TOKEN)")
	}

	switch cfg.Environment {
	case "":
		missingConfigs = append(missingConfigs, "environment")
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if !entity.Funding(cfg.Payment.Funding).Valid() {
		return fmt.Errorf("invalid payment.funding: %q, must be %s or %s",
			cfg.Payment.Funding, entity.FundingExternal, entity.FundingWallet)
	}
	if err := database.NewConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if cfg.Environment == config.Production {
		var warnings []string
		if cfg.Auth.AdminKeyHash == "" {
			warnings = append(warnings, "auth.adminKeyHash is empty, every admin request will be refused")
		}
		if cfg.Payment.WebhookSecret == "" {
			warnings = append(warnings, "payment.webhookSecret is empty, every webhook will be refused")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
