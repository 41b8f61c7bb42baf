package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffpay/staffpay-backend-go/internal/config"
	appHTTP "github.com/staffpay/staffpay-backend-go/internal/handler/http"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/database"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/jwt"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/storage"
	"github.com/staffpay/staffpay-backend-go/internal/repository/postgresql"
	advanceService "github.com/staffpay/staffpay-backend-go/internal/service/advance"
	allowanceService "github.com/staffpay/staffpay-backend-go/internal/service/allowance"
	serviceAuth "github.com/staffpay/staffpay-backend-go/internal/service/auth"
	"github.com/staffpay/staffpay-backend-go/internal/service/file"
	payrollService "github.com/staffpay/staffpay-backend-go/internal/service/payroll"
	userService "github.com/staffpay/staffpay-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := postgresql.RunMigrations(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	allowanceRepo := postgresql.NewAllowanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, paymentRepo, advanceRepo, allowanceRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, userRepo)
	allowanceSvc := allowanceService.NewAllowanceService(allowanceRepo, userRepo)
	payrollSvc := payrollService.NewPaymentService(txManager, paymentRepo, userRepo, advanceRepo, allowanceRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	userHandler := appHTTP.NewUserHandler(userSvc, fileService)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	allowanceHandler := appHTTP.NewAllowanceHandler(allowanceSvc)
	paymentHandler := appHTTP.NewPaymentHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		advanceHandler,
		allowanceHandler,
		paymentHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
