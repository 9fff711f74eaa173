package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/api/http/handlers"
	"github.com/Naveen122004/portfolio-service/internal/auth"
	"github.com/Naveen122004/portfolio-service/internal/observability"
	"github.com/Naveen122004/portfolio-service/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Testimonials   *handlers.TestimonialsHandler
	Admin          *handlers.AdminHandler
	Users          *handlers.UsersHandler
	Content        *handlers.ContentHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.AuthMiddleware
	RoleRepo       repository.RoleRepository
	Metrics        *observability.Metrics
	SubmitLimiter  fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Handler())

	// Static portfolio catalog.
	app.Get("/profile", cfg.Content.Profile)
	app.Get("/projects", cfg.Content.Projects)
	app.Get("/projects/:id", cfg.Content.Project)
	app.Get("/blog", cfg.Content.BlogPosts)
	app.Get("/education", cfg.Content.Education)
	app.Get("/skills", cfg.Content.Skills)

	// Public testimonial feed and rate-limited submission.
	app.Get("/testimonials", cfg.Testimonials.ListApproved)
	app.Post("/testimonials", cfg.SubmitLimiter, cfg.Testimonials.Submit)
	app.Post("/contact", cfg.SubmitLimiter, cfg.Contact.Send)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	session := authGroup.Group("", cfg.AuthMiddleware.Handle)
	session.Post("/signout", cfg.Users.SignOut)
	session.Get("/me", cfg.Users.Me)

	// Moderation console. The role check runs on every request so a revoked
	// grant takes effect immediately.
	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin(cfg.RoleRepo))
	admin.Get("/testimonials", cfg.Admin.List)
	admin.Post("/testimonials/:id/approve", cfg.Admin.Approve)
	admin.Post("/testimonials/:id/reject", cfg.Admin.Reject)
	admin.Delete("/testimonials/:id", cfg.Admin.Delete)
}
