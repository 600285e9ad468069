package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/internal/handlers"
	"github.com/cashflowhq/cashflow-commander/internal/insights"
	"github.com/cashflowhq/cashflow-commander/utils"
)

// scheduleJobs wires the nightly maintenance work: regenerating insights
// for users with recent activity and deactivating budgets whose window
// has ended.
func scheduleJobs(pool *pgxpool.Pool) {
	c := cron.New()

	if _, err := c.AddFunc("@daily", func() {
		insights.RefreshAll(pool)
	}); err != nil {
		log.Fatalf("scheduling insight refresh: %v", err)
	}

	if _, err := c.AddFunc("@daily", func() {
		n, err := database.DeactivateExpiredBudgets(pool, time.Now().UnixMilli())
		if err != nil {
			log.Printf("budget sweep: %v", err)
			return
		}
		if n > 0 {
			log.Printf("budget sweep: deactivated %d expired budgets", n)
		}
	}); err != nil {
		log.Fatalf("scheduling budget sweep: %v", err)
	}

	c.Start()
}

func main() {
	seed := flag.Bool("seed", false, "seed demo data and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment as-is")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	founderEmail := os.Getenv("FOUNDER_EMAIL")

	pool, err := database.ConnectPool(context.Background())
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(context.Background(), pool); err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	if *seed {
		if err := utils.SeedDemoData(pool); err != nil {
			log.Fatalf("seeding demo data: %v", err)
		}
		return
	}

	scheduleJobs(pool)

	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}

	r := gin.Default()
	r.Use(handlers.CORSMiddleware(allowedOrigin), handlers.RequestIDMiddleware())

	r.POST("/register", handlers.RegisterHandler(pool, jwtSecret, founderEmail))
	r.POST("/login", handlers.LoginHandler(pool, jwtSecret))

	// Read endpoints accept anonymous callers and answer with empty
	// results; writes require a token.
	api := r.Group("/api")
	reads := api.Group("")
	reads.Use(handlers.OptionalAuthMiddleware(jwtSecret))

	reads.GET("/me", handlers.MeHandler(pool))
	reads.GET("/accounts", handlers.ListAccountsHandler(pool))
	reads.GET("/accounts/total", handlers.TotalBalanceHandler(pool))
	reads.GET("/transactions", handlers.ListTransactionsHandler(pool))
	reads.GET("/transactions/stats/monthly", handlers.MonthlyStatsHandler(pool))
	reads.GET("/transactions/breakdown", handlers.CategoryBreakdownHandler(pool))
	reads.GET("/budgets", handlers.ListBudgetsHandler(pool))
	reads.GET("/categories", handlers.ListCategoriesHandler(pool))
	reads.GET("/insights", handlers.ListInsightsHandler(pool))
	reads.GET("/profile", handlers.GetProfileHandler(pool))
	reads.GET("/profile/badges", handlers.ProfileWithBadgesHandler(pool))
	reads.GET("/badges", handlers.ListBadgesHandler(pool))
	reads.GET("/users/:id/badges", handlers.UserBadgesHandler(pool))
	reads.GET("/founder", handlers.IsFounderHandler(pool))
	reads.GET("/admin/users", handlers.ListAllUsersHandler(pool))

	writes := api.Group("")
	writes.Use(handlers.AuthMiddleware(jwtSecret))

	writes.POST("/accounts", handlers.CreateAccountHandler(pool))
	writes.PUT("/accounts/:id", handlers.UpdateAccountHandler(pool))
	writes.POST("/transactions", handlers.CreateTransactionHandler(pool))
	writes.POST("/budgets", handlers.CreateBudgetHandler(pool))
	writes.PUT("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	writes.POST("/categories", handlers.CreateCategoryHandler(pool))
	writes.POST("/categories/defaults", handlers.InitializeDefaultCategoriesHandler(pool))
	writes.POST("/insights/generate", handlers.GenerateInsightsHandler(pool))
	writes.POST("/insights/:id/read", handlers.MarkInsightReadHandler(pool))
	writes.PUT("/profile", handlers.UpsertProfileHandler(pool))
	writes.POST("/badges", handlers.CreateBadgeHandler(pool))
	writes.POST("/badges/assign", handlers.AssignBadgeHandler(pool))
	writes.POST("/badges/revoke", handlers.RevokeBadgeHandler(pool))
	writes.POST("/badges/founder/init", handlers.InitFounderBadgeHandler(pool))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("starting server: %v", err)
	}
}
