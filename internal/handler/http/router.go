package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffpay/staffpay-backend-go/internal/handler/http/middleware"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	advanceHandler AdvanceHandler,
	allowanceHandler AllowanceHandler,
	paymentHandler PaymentHandler,
	frontendURL string,
	appEnv string,
	uploadsDir string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffpay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded profile photos
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Staff self-service
			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.StaffOnly)
				r.Get("/financial-details", userHandler.MyFinancialDetails)
				r.Get("/payments", paymentHandler.ListMine)
				r.Get("/allowances", allowanceHandler.ListMine)
				r.Route("/advances", func(r chi.Router) {
					r.Get("/", advanceHandler.ListMine)
					r.Post("/", advanceHandler.Create)
				})
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Register)

				r.Route("/{id}", func(r chi.Router) {
					// Account deletion is reserved for the superadmin.
					r.With(middleware.SuperAdminOnly).Delete("/", userHandler.Delete)
					r.Put("/salary", userHandler.RaiseSalary)
					r.Get("/financial-details", userHandler.FinancialDetails)
					r.Get("/payments", paymentHandler.ListByEmployee)
					r.Get("/advances", advanceHandler.ListByEmployee)
					r.Route("/allowances", func(r chi.Router) {
						r.Get("/", allowanceHandler.ListByEmployee)
						r.Post("/", allowanceHandler.Grant)
					})
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", advanceHandler.List)
				r.Patch("/{id}/decision", advanceHandler.Decide)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", paymentHandler.List)
				r.Post("/settle", paymentHandler.Settle)
			})
		})
	})
	return r
}
