package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"mfcompass/internal/advisor"
	geminiclient "mfcompass/internal/client/gemini"
	"mfcompass/internal/config"
	cronrunner "mfcompass/internal/cron"
	"mfcompass/internal/db"
	"mfcompass/internal/handler"
	"mfcompass/internal/logger"
	"mfcompass/internal/repository"
	filerepository "mfcompass/internal/repository/file"
	gormrepository "mfcompass/internal/repository/gorm"
	"mfcompass/internal/service"

	_ "mfcompass/docs"
)

func main() {
	cfgPath := os.Getenv("MF_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("MF_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	fileStore := filerepository.New(cfg.Data.FundsPath, cfg.Data.MarketPath, cfg.Data.PortfolioPath)

	var fundRepo repository.FundRepository = fileStore
	var marketRepo repository.MarketRepository = fileStore
	var scoreWriter repository.FundScoreWriter
	var dbConn *db.DB

	if strings.EqualFold(cfg.Data.Source, "db") {
		dbConn, err = db.Open(cfg.DB)
		if err != nil {
			logger.Fatal("db open failed", zap.Error(err))
		}
		defer db.Close(dbConn)

		if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
			logger.Warn("failed to set timezone", zap.Error(err))
		}
		if err := db.AutoMigrate(dbConn); err != nil {
			logger.Fatal("auto-migrate failed", zap.Error(err))
		}

		store := gormrepository.New(dbConn.Gorm)
		fundRepo = store
		marketRepo = store
		scoreWriter = store
	}

	geminiHTTP := &http.Client{Timeout: cfg.Gemini.Timeout}
	gemini := geminiclient.NewClient(geminiHTTP, cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !gemini.Configured() {
		logger.Warn("gemini api key missing, advisor runs in fallback mode")
	}

	rankingService := &service.RankingService{Repo: fundRepo}
	simulationService := &service.SimulationService{
		Funds:  fundRepo,
		Market: marketRepo,
		Logger: logger,
	}
	adv := &advisor.Advisor{Client: gemini, Logger: logger}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{}
	if dbConn != nil {
		healthHandler.DB = dbConn.Gorm
	}
	healthHandler.Register(engine)

	fundHandler := &handler.FundHandler{Ranking: rankingService, Logger: logger}
	fundHandler.Register(engine)
	portfolioHandler := &handler.PortfolioHandler{
		Portfolio:  fileStore,
		Simulation: simulationService,
		Logger:     logger,
	}
	portfolioHandler.Register(engine)
	analyzeHandler := &handler.AnalyzeHandler{Advisor: adv}
	analyzeHandler.Register(engine)
	simulateHandler := &handler.SimulateHandler{Simulation: simulationService, Logger: logger}
	simulateHandler.Register(engine)
	chatHandler := &handler.ChatHandler{Advisor: adv, Funds: fundRepo, Logger: logger}
	chatHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled && scoreWriter != nil {
		refresh := &service.ScoreRefreshService{
			Repo:   fundRepo,
			Writer: scoreWriter,
			Logger: logger,
		}
		_, err := cronRunner.Add(cfg.Cron.ScoreRefresh, func(ctx context.Context) {
			if err := refresh.RunOnce(ctx); err != nil {
				logger.Warn("cron score refresh failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register score refresh failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
