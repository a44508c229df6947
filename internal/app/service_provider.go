package app

import (
	"context"
	adminAPI "flying_horse_backend/internal/api/admin"
	authAPI "flying_horse_backend/internal/api/auth"
	gameAPI "flying_horse_backend/internal/api/game"
	recordsAPI "flying_horse_backend/internal/api/records"
	"flying_horse_backend/internal/config"
	"flying_horse_backend/internal/config/env"
	"flying_horse_backend/internal/engine"
	"flying_horse_backend/internal/jobs"
	"flying_horse_backend/internal/middleware"
	"flying_horse_backend/internal/repository"
	"flying_horse_backend/internal/repository/auth_repo"
	"flying_horse_backend/internal/repository/config_repo"
	"flying_horse_backend/internal/repository/record_repo"
	"flying_horse_backend/internal/repository/stats_repo"
	"flying_horse_backend/internal/repository/user_repo"
	"flying_horse_backend/internal/service"
	"flying_horse_backend/internal/service/admin"
	"flying_horse_backend/internal/service/auth"
	"flying_horse_backend/internal/service/game"
	"flying_horse_backend/pkg/resp"
	"net/http"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Configs
	appCfg  config.AppConfig
	httpCfg config.HTTPConfig
	jwtCfg  config.JWTConfig
	gameCfg config.GameConfig

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Repositories
	authRepo   repository.AuthRepository
	userRepo   repository.UserRepository
	recordRepo repository.RecordRepository
	configRepo repository.ConfigRepository
	statsRepo  *stats_repo.StateRepo

	// Outcome engines, одно на сессию
	engines *engine.Registry

	// Services
	authServ  service.AuthService
	gameServ  service.GameService
	adminServ service.AdminService

	// Handlers
	authHand    *authAPI.Handler
	gameHand    *gameAPI.Handler
	recordsHand *recordsAPI.Handler
	adminHand   *adminAPI.Handler

	scheduler *jobs.Scheduler
	router    chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) AppCfg() config.AppConfig {
	if sp.appCfg == nil {
		cfg, err := env.NewAppConfig()
		if err != nil {
			panic("failed to get app config: " + err.Error())
		}
		sp.appCfg = cfg
	}
	return sp.appCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) RecordRepo(ctx context.Context) repository.RecordRepository {
	if sp.recordRepo == nil {
		sp.recordRepo = record_repo.NewRecordRepository(sp.DBClient(ctx))
	}
	return sp.recordRepo
}

func (sp *ServiceProvider) ConfigRepo(ctx context.Context) repository.ConfigRepository {
	if sp.configRepo == nil {
		sp.configRepo = config_repo.NewConfigRepository(sp.DBClient(ctx))
	}
	return sp.configRepo
}

// targetRTP RTP из сохранённой админом настройки, при её отсутствии из config.yaml
func (sp *ServiceProvider) targetRTP(ctx context.Context) float64 {
	cfg, err := sp.ConfigRepo(ctx).GetOrCreate(ctx, game.DefaultGameConfig(sp.GameCfg()))
	if err != nil {
		log.WithError(err).Warn("stored game config unavailable, using config.yaml rtp")
		return sp.GameCfg().TargetRTP()
	}
	return cfg.RTP
}

func (sp *ServiceProvider) StatsRepo(ctx context.Context) *stats_repo.StateRepo {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.targetRTP(ctx))
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Engines(ctx context.Context) *engine.Registry {
	if sp.engines == nil {
		sp.engines = engine.NewRegistry(sp.targetRTP(ctx))
	}
	return sp.engines
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GameCfg(),
			sp.Engines(ctx),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.RecordRepo(ctx),
			sp.ConfigRepo(ctx),
			sp.StatsRepo(ctx),
			sp.Engines(ctx),
			sp.GameCfg(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.RecordRepo(ctx),
			sp.ConfigRepo(ctx),
			sp.StatsRepo(ctx),
			sp.Engines(ctx),
			sp.GameCfg(),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) RecordsHandler(ctx context.Context) *recordsAPI.Handler {
	if sp.recordsHand == nil {
		sp.recordsHand = recordsAPI.NewHandler(recordsAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.recordsHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.AdminService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *jobs.Scheduler {
	if sp.scheduler == nil {
		sp.scheduler = jobs.NewScheduler(
			sp.Engines(ctx),
			sp.AuthRepo(ctx),
			sp.StatsRepo(ctx),
			sp.JWTCfg().AccessTokenDuration(),
		)
	}
	return sp.scheduler
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		authMW := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		authHandler := sp.AuthHandler(ctx)
		gameHandler := sp.GameHandler(ctx)
		recordsHandler := sp.RecordsHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)

		r.Route("/api", func(api chi.Router) {
			api.Get("/health", health)

			// Auth endpoints
			api.Route("/auth", func(rr chi.Router) {
				rr.Post("/register", authHandler.Register)
				rr.Post("/login", authHandler.Login)
				rr.Post("/refresh", authHandler.Refresh)
				rr.With(authMW).Post("/logout", authHandler.Logout)
				rr.With(authMW).Get("/profile", authHandler.Profile)
			})

			// Game endpoints, конфиг открыт без токена
			api.Route("/game", func(rr chi.Router) {
				rr.Get("/config", gameHandler.Config)
				rr.Group(func(pr chi.Router) {
					pr.Use(authMW)
					pr.Get("/balance", gameHandler.Balance)
					pr.Post("/launch", gameHandler.Launch)
					pr.Post("/shoot", gameHandler.Shoot)
				})
			})

			// Records endpoints
			api.Route("/records", func(rr chi.Router) {
				rr.Use(authMW)
				rr.Get("/history", recordsHandler.History)
				rr.Get("/stats", recordsHandler.Stats)
			})

			// Admin endpoints
			api.Route("/admin", func(rr chi.Router) {
				rr.Use(authMW, middleware.RequireAdmin)
				rr.Get("/players", adminHandler.Players)
				rr.Get("/players/{id}", adminHandler.PlayerDetail)
				rr.Put("/players/{id}/balance", adminHandler.UpdateBalance)
				rr.Put("/players/{id}/status", adminHandler.UpdateStatus)
				rr.Get("/reports", adminHandler.Reports)
				rr.Get("/game-config", adminHandler.GameConfig)
				rr.Put("/game-config", adminHandler.UpdateGameConfig)
			})
		})

		sp.router = r
	}

	return sp.router
}

func health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
