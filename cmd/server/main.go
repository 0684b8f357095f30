package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/auth"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/contract"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/template"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/config"
	infraauth "github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/auth"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/clock"
	httprouter "github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/handlers"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/http/middleware"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/persistence/postgres"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/queue"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/render"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/security"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := postgres.Migrate(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	contractRepo := postgres.NewContractRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tokenStore := postgres.NewTokenStore(pool)

	var emitter ports.WebhookEmitter
	if cfg.Webhook.URL != "" {
		opts := []webhook.HTTPEmitterOption{}
		if cfg.Webhook.Token != "" {
			opts = append(opts, webhook.WithHeader("Authorization", "Bearer "+cfg.Webhook.Token))
		}
		emitter = webhook.NewHTTPEmitter(cfg.Webhook.URL, opts...)
	} else {
		emitter = webhook.NewNoopEmitter()
	}

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		asynqOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, emitter, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer(log)
	}

	hasher := security.NewArgon2Hasher(security.Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	privateKey, err := infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("parse JWT private key")
	}
	issuer := infraauth.NewTokenIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	sysClock := clock.NewSystem()
	renderer := render.NewHTMLRenderer()

	registerUC := auth.NewRegister(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	refreshUC := auth.NewRefresh(userRepo, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	logoutUC := auth.NewLogout(tokenStore)

	createUC := contract.NewCreateContract(contractRepo, sysClock)
	getUC := contract.NewGetContract(contractRepo)
	listUC := contract.NewListContracts(contractRepo)
	updateUC := contract.NewUpdateContract(contractRepo, sysClock)
	deleteUC := contract.NewDeleteContract(contractRepo)
	statsUC := contract.NewContractStats(contractRepo, sysClock)
	generateUC := contract.NewGenerateContent(contractRepo, renderer, sysClock)
	sendUC := contract.NewSendForSignature(contractRepo, renderer, taskEnqueuer, sysClock)
	signUC := contract.NewSignContract(contractRepo, taskEnqueuer, sysClock)
	cancelUC := contract.NewCancelContract(contractRepo, taskEnqueuer, sysClock)

	listTemplatesUC := template.NewListTemplates(templateRepo)
	getTemplateUC := template.NewGetTemplate(templateRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.Server.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	userLimit, err := middleware.NewUserRateLimiter(cfg.Server.RatePerUser)
	if err != nil {
		log.Fatal().Err(err).Msg("create user rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Server.Development))
	corsMiddleware := middleware.CORS(cfg.Server.CORSOrigins, nil, nil)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, log)
	contractsHandler := handlers.NewContractsHandler(createUC, getUC, listUC, updateUC, deleteUC, statsUC, generateUC, sendUC, signUC, cancelUC, log)
	templatesHandler := handlers.NewTemplatesHandler(listTemplatesUC, getTemplateUC, log)
	requireJWT := middleware.NewAuthValidator(issuer).Handler
	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:      authHandler,
		ContractsHandler: contractsHandler,
		TemplatesHandler: templatesHandler,
		HealthHandler:    healthHandler,
		RequireJWT:       requireJWT,
		Log:              log,
		Secure:           secureMiddleware,
		CORS:             corsMiddleware,
		IPRateLimit:      ipLimit,
		UserRateLimit:    userLimit,
		Metrics:          cfg.Server.Metrics,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
