package routes

import (
	"jobhub-backend/internal/adapters/http/handlers"
	"jobhub-backend/internal/adapters/http/middleware"
	"jobhub-backend/internal/adapters/persistence/repositories"
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto the app.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo, userRepo)
	emailService := services.NewEmailService(services.NewSendGridSender(cfg))

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, userService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	emailHandler := handlers.NewEmailHandler(emailService)

	session := middleware.Session(authService)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/token", authHandler.RefreshToken)

	auth.Get("/retrieve_user", session, authHandler.Me)
	// The literal /remove segment must register before the :id param.
	auth.Delete("/retrieve_user/remove", session, authHandler.RemoveSelf)
	auth.Get("/retrieve_user/:id", session, userHandler.GetUser)
	auth.Get("/retrieve_users", session, middleware.AdminOnly(), userHandler.ListUsers)
	auth.Get("/retrieve_users/:group", session, middleware.AdminOnly(), userHandler.ListUsers)
	auth.Put("/update_user", session, authHandler.UpdateUser)
	auth.Put("/archive_user/:id", session, middleware.AdminOnly(), userHandler.Archive)
	auth.Put("/remove_user/:id", session, middleware.AdminOnly(), userHandler.Remove)
	auth.Put("/restore_user/:id", session, middleware.AdminOnly(), userHandler.Restore)

	// Booking routes
	bookings := app.Group("/bookings", session)
	bookings.Get("/retrieve_jobs", jobHandler.RetrieveJobs)
	bookings.Get("/retrieve_job/:id", jobHandler.RetrieveJob)
	bookings.Post("/post_job", jobHandler.PostJob)
	bookings.Post("/assign_contractor", jobHandler.AssignContractor)
	bookings.Put("/update_job", jobHandler.UpdateJob)
	bookings.Delete("/remove_job", jobHandler.RemoveJob)

	// Email manager routes
	email := app.Group("/emailManager")
	email.Post("/submit", emailHandler.Submit)
}
