package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/config"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/db"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

// @title E-Commerce Dashboard API
// @version 1.0
// @description Read-only metrics over a static e-commerce order dataset.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ No .env file found, using environment")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}
	ctx := context.Background()

	auth.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	rl.Configure(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	var database *sql.DB
	var source repo.OrderSource
	switch cfg.Dataset.Source {
	case "postgres":
		database, err = db.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()
		source = repo.NewPostgresOrderSource(database, cfg.Dataset.Table)
	default:
		source = repo.NewCSVOrderSource(cfg.Dataset.Location)
	}

	started := time.Now()
	orders, err := source.LoadOrders(ctx)
	if err != nil {
		log.Fatal("❌ Could not load dataset:", err)
	}
	ds := dataset.New(orders)
	if ds.Len() == 0 {
		log.Fatal("❌ Dataset has no orders")
	}
	minDate, maxDate, _ := ds.Bounds()
	log.Printf("📦 Loaded %d order rows (%s to %s) in %s",
		ds.Len(), minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"), time.Since(started).Round(time.Millisecond))

	handlers.SetMetricsRepo(repo.NewDatasetMetricsRepository(ds))
	handlers.SetUserRepo(userRepository(cfg, database))

	var store ban.Store
	if cfg.Redis.Addr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer redisService.Close()
		store = ban.NewRedisStore(redisService)
		log.Println("🔒 Ban store: redis at", cfg.Redis.Addr)
	} else {
		store = ban.NewMemoryStore()
		log.Println("🔒 Ban store: in memory")
	}
	banService := ban.NewService(store, cfg.RateLimit.StrikeThreshold, cfg.RateLimit.StrikeWindow, cfg.RateLimit.BanDuration)
	handlers.SetBanService(banService)
	mw.SetBanService(banService)

	go banService.StartDailyBanSummary(time.Hour * 24)
	go rl.StartVisitorCleanupLoop()

	router.SetTrustProxy(cfg.Server.TrustProxy)
	r := router.NewRouter()
	log.Println("✅ Server running on", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatal(err)
	}
}

// userRepository serves admin logins from the users table when the dataset
// lives in Postgres, otherwise from the configured admin account.
func userRepository(cfg config.Config, database *sql.DB) repo.UserRepository {
	if database != nil && !cfg.AdminEnabled() {
		return repo.NewPostgresUserRepository(database)
	}

	users := repo.NewInMemoryUserRepository()
	if !cfg.AdminEnabled() {
		log.Println("ℹ️ Admin endpoints disabled: set auth.jwt_secret and auth.admin_password_hash")
		return users
	}
	if _, err := users.CreateUser(models.User{
		Username:     cfg.Auth.AdminUser,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		Role:         "admin",
	}); err != nil {
		log.Fatal("❌ Could not register admin user:", err)
	}
	return users
}
