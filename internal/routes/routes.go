package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/pawkeep/pawkeep-backend/internal/config"
	"github.com/pawkeep/pawkeep-backend/internal/handlers"
	"github.com/pawkeep/pawkeep-backend/internal/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Dashboard   *handlers.DashboardHandler
	User        *handlers.UserHandler
	Pet         *handlers.PetHandler
	Species     *handlers.SpeciesHandler
	Status      *handlers.StatusHandler
	Priority    *handlers.PriorityHandler
	Activity    *handlers.ActivityHandler
	HealthEvent *handlers.HealthEventHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Everything below requires an authenticated caller.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/dashboard", h.Dashboard.Summary)

	users := protected.Group("/users")
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Get("/:id", h.User.Get)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	pets := protected.Group("/pets")
	pets.Get("/", h.Pet.List)
	pets.Post("/", h.Pet.Create)
	pets.Get("/:id", h.Pet.Get)
	pets.Put("/:id", h.Pet.Update)
	pets.Delete("/:id", h.Pet.Delete)
	pets.Post("/:id/toggle-ownership", h.Pet.ToggleOwnership)

	species := protected.Group("/species")
	species.Get("/", h.Species.List)
	species.Post("/", h.Species.Create)
	species.Get("/:id", h.Species.Get)
	species.Put("/:id", h.Species.Update)
	species.Delete("/:id", h.Species.Delete)

	statuses := protected.Group("/statuses")
	statuses.Get("/", h.Status.List)
	statuses.Post("/", h.Status.Create)
	statuses.Get("/:id", h.Status.Get)
	statuses.Put("/:id", h.Status.Update)
	statuses.Delete("/:id", h.Status.Delete)

	priorities := protected.Group("/priorities")
	priorities.Get("/", h.Priority.List)
	priorities.Post("/", h.Priority.Create)
	priorities.Get("/:id", h.Priority.Get)
	priorities.Put("/:id", h.Priority.Update)
	priorities.Delete("/:id", h.Priority.Delete)

	activities := protected.Group("/activities")
	activities.Get("/", h.Activity.List)
	activities.Post("/", h.Activity.Create)
	activities.Get("/:id", h.Activity.Get)
	activities.Put("/:id", h.Activity.Update)
	activities.Delete("/:id", h.Activity.Delete)

	healthevents := protected.Group("/healthevents")
	healthevents.Get("/", h.HealthEvent.List)
	healthevents.Post("/", h.HealthEvent.Create)
	healthevents.Get("/:id", h.HealthEvent.Get)
	healthevents.Put("/:id", h.HealthEvent.Update)
	healthevents.Delete("/:id", h.HealthEvent.Delete)
}
