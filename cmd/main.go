package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/config"
	_ "github.com/lshigami/SigmaLearn/docs" // Swagger docs
	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/controller"
	"github.com/lshigami/SigmaLearn/internal/database"
	"github.com/lshigami/SigmaLearn/internal/logger"
	"github.com/lshigami/SigmaLearn/internal/observability"
	"github.com/lshigami/SigmaLearn/internal/repository"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/lshigami/SigmaLearn/internal/speech"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"
)

const (
	workspaceSweepInterval = time.Minute
	tokenSweepInterval     = time.Hour
)

// @title SigmaLearn Web API
// @version 1.0
// @description Server side of the SigmaLearn learning app: quizzes by topic or PDF, summaries, the study assistant and quiz analytics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			observability.NewTracing,
			NewGinEngine,
		),

		// Backend and local storage
		fx.Provide(
			backend.NewFromConfig,
			func(c *backend.Client) service.QuestionSource { return c },
			func(c *backend.Client) service.AttemptStore { return c },
			func(c *backend.Client) service.Responder { return c },
			func(c *backend.Client) service.UserSyncer { return c },
			repository.NewClientTokenRepository,
			repository.NewUserProfileRepository,
			speech.NewService,
		),

		// Services Layer
		fx.Provide(
			service.NewWorkspaceStore,
			service.NewScoreConverterService,
			service.NewQuizSubmissionService,
			service.NewQuizService,
			service.NewDocumentService,
			service.NewAnalyticsService,
			func(responder service.Responder, sp *speech.Service) service.AssistantService {
				// Speech output happens in the browser; the server only recognizes.
				return service.NewAssistantService(responder, sp.Factory(), nil)
			},
			service.NewSummarizeService,
			service.NewAccountService,
			service.NewShellService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewQuizController,
			controller.NewDocumentController,
			controller.NewAnalyticsController,
			controller.NewAssistantController,
			controller.NewSummarizeController,
			controller.NewAccountController,
			controller.NewShellController,
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterShutdownHooks),
		fx.Invoke(StartBackgroundJobs),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func NewGinEngine(cfg *config.Config, tokens repository.ClientTokenRepository) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", auth.ClientHeader},
		ExposeHeaders:    []string{"Content-Length", auth.ClientHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	r.Use(auth.Middleware(tokens, cfg.IsProduction()))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterShutdownHooks flushes traces, waits for background saves and
// uploads, and closes the speech connection when the app stops.
func RegisterShutdownHooks(
	lc fx.Lifecycle,
	tracing *observability.Tracing,
	sp *speech.Service,
	submissions service.QuizSubmissionService,
	documents service.DocumentService,
) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			waitOrDone(ctx, func() {
				documents.Wait()
				submissions.Wait()
			})
			if err := sp.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close speech client")
			}
			return tracing.Shutdown(ctx)
		},
	})
}

func waitOrDone(ctx context.Context, wait func()) {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Msg("Gave up waiting for background work")
	}
}

// StartBackgroundJobs sweeps idle workspaces and expired client tokens.
func StartBackgroundJobs(lc fx.Lifecycle, workspaces *service.WorkspaceStore, tokens repository.ClientTokenRepository) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go workspaces.Run(ctx, workspaceSweepInterval)
			go sweepTokens(ctx, tokens, tokenSweepInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func sweepTokens(ctx context.Context, tokens repository.ClientTokenRepository, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := tokens.DeleteExpired(now)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to delete expired client tokens")
				continue
			}
			if n > 0 {
				log.Info().Int64("count", n).Msg("Deleted expired client tokens")
			}
		}
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	documentCtrl *controller.DocumentController,
	analyticsCtrl *controller.AnalyticsController,
	assistantCtrl *controller.AssistantController,
	summarizeCtrl *controller.SummarizeController,
	accountCtrl *controller.AccountController,
	shellCtrl *controller.ShellController,
) {
	api := router.Group("/api/v1")
	for _, routes := range []controller.Routes{
		quizCtrl,
		documentCtrl,
		analyticsCtrl,
		assistantCtrl,
		summarizeCtrl,
		accountCtrl,
		shellCtrl,
	} {
		routes.RegisterRoutes(api)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SigmaLearn API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
