package main

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sebuszqo/WalletManager/internal/auth"
	database "github.com/sebuszqo/WalletManager/internal/db"
	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/infrastructure"
	"github.com/sebuszqo/WalletManager/internal/finance/interfaces"
	"github.com/sebuszqo/WalletManager/internal/logging"
	"github.com/sebuszqo/WalletManager/internal/user"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	walletHandler      *wallet.Handler
	categoryHandler    *interfaces.CategoryHandler
	subcategoryHandler *interfaces.SubcategoryHandler
	transactionHandler *interfaces.TransactionHandler
	dashboardHandler   *interfaces.DashboardHandler
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()
	authRequired := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	router.Handle("POST /auth/signup", http.HandlerFunc(s.authHandler.HandleSignUp))
	router.Handle("POST /auth/signin", http.HandlerFunc(s.authHandler.HandleSignIn))
	router.Handle("GET /ready", http.HandlerFunc(s.handleReady))

	// USERS API
	router.Handle("GET /users/me", authRequired(http.HandlerFunc(s.userHandler.HandleGetMe)))

	// WALLETS API
	router.Handle("POST /wallets", authRequired(http.HandlerFunc(s.walletHandler.CreateWallet)))
	router.Handle("GET /wallets", authRequired(http.HandlerFunc(s.walletHandler.GetWallets)))

	// CATEGORIES API
	router.Handle("POST /categories", authRequired(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	router.Handle("GET /categories", authRequired(http.HandlerFunc(s.categoryHandler.GetCategories)))
	router.Handle("GET /categories/{categoryID}", authRequired(http.HandlerFunc(s.categoryHandler.GetCategory)))
	router.Handle("PATCH /categories/{categoryID}", authRequired(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	router.Handle("DELETE /categories/{categoryID}", authRequired(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// SUBCATEGORIES API
	router.Handle("POST /subcategories", authRequired(http.HandlerFunc(s.subcategoryHandler.CreateSubcategory)))
	router.Handle("GET /subcategories", authRequired(http.HandlerFunc(s.subcategoryHandler.GetSubcategories)))
	router.Handle("GET /subcategories/{subcategoryID}", authRequired(http.HandlerFunc(s.subcategoryHandler.GetSubcategory)))
	router.Handle("PATCH /subcategories/{subcategoryID}", authRequired(http.HandlerFunc(s.subcategoryHandler.UpdateSubcategory)))
	router.Handle("DELETE /subcategories/{subcategoryID}", authRequired(http.HandlerFunc(s.subcategoryHandler.DeleteSubcategory)))

	// TRANSACTIONS API
	router.Handle("POST /transactions", authRequired(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	router.Handle("GET /transactions", authRequired(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	router.Handle("GET /transactions/{transactionID}", authRequired(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	router.Handle("PATCH /transactions/{transactionID}", authRequired(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	router.Handle("DELETE /transactions/{transactionID}", authRequired(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// DASHBOARD API
	router.Handle("GET /dashboard/summary", authRequired(http.HandlerFunc(s.dashboardHandler.GetSummary)))
	router.Handle("GET /dashboard/expenses-by-category", authRequired(http.HandlerFunc(s.dashboardHandler.GetExpensesByCategory)))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	logging.Setup()

	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	jwtManager := auth.NewJWTManager()

	authRepo := auth.NewUserRepository(dbService.DB)
	authService := auth.NewAuthService(authRepo, jwtManager)
	authHandler := auth.NewHandler(authService, respondJSON, respondError)

	walletRepo := wallet.NewWalletRepository(dbService.DB)
	walletService := wallet.NewWalletService(walletRepo)
	walletHandler := wallet.NewHandler(walletService, respondJSON, respondError)

	userService := user.NewUserService(authRepo, walletService)
	userHandler := user.NewHandler(userService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	subcategoryRepo := infrastructure.NewSubcategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, walletService)
	subcategoryService := application.NewSubcategoryService(subcategoryRepo, categoryRepo, walletService)
	transactionService := application.NewTransactionService(transactionRepo, subcategoryRepo, walletService)
	dashboardService := application.NewDashboardService(transactionRepo, walletService)

	server := &Server{
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		walletHandler:      walletHandler,
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, respondJSON, respondError),
		subcategoryHandler: interfaces.NewSubcategoryHandler(subcategoryService, respondJSON, respondError),
		transactionHandler: interfaces.NewTransactionHandler(transactionService, respondJSON, respondError),
		dashboardHandler:   interfaces.NewDashboardHandler(dashboardService, respondJSON, respondError),
	}
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
