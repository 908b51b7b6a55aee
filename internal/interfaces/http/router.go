package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/analytics"
	"github.com/malithvisio/magcin-api/internal/application/auth"
	"github.com/malithvisio/magcin-api/internal/application/booking"
	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/application/tenant"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	PackageUC      *usecase.PackageUseCase
	DestinationUC  *usecase.DestinationUseCase
	ActivityUC     *usecase.ActivityUseCase
	BlogUC         *usecase.BlogUseCase
	TestimonialUC  *usecase.TestimonialUseCase
	TeamUC         *usecase.TeamUseCase
	CategoryUC     *usecase.CategoryUseCase
	BookingUC      *booking.UseCase
	StatsUC        *analytics.StatsUseCase
	Ledger         *quota.Ledger
	TenantResolver *tenant.Resolver
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Superficie pública del sitio (sin auth, solo contenido publicado)
	publicHandler := NewPublicHandler(deps.PackageUC, deps.DestinationUC, deps.ActivityUC, deps.BlogUC, deps.TestimonialUC, deps.TeamUC)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	public := api.Group("/public")
	public.Post("/bookings", bookingHandler.Create)
	site := public.Group("/:rootUserId")
	site.Get("/packages", publicHandler.ListPackages)
	site.Get("/packages/:slug", publicHandler.GetPackageBySlug)
	site.Get("/destinations", publicHandler.ListDestinations)
	site.Get("/destinations/:slug", publicHandler.GetDestinationBySlug)
	site.Get("/activities", publicHandler.ListActivities)
	site.Get("/activities/:slug", publicHandler.GetActivityBySlug)
	site.Get("/blogs", publicHandler.ListBlogs)
	site.Get("/blogs/:slug", publicHandler.GetBlogBySlug)
	site.Get("/testimonials", publicHandler.ListTestimonials)
	site.Get("/team", publicHandler.ListTeam)

	// Rutas protegidas: token válido + cuenta resuelta contra la base
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantMiddleware(deps.TenantResolver))

	// Members del tenant (solo root/admin, validado en el usecase)
	protected.Post("/auth/members", authHandler.RegisterMember)

	// Packages
	packages := protected.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Put("/reorder", packageHandler.Reorder)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Put("/:id", packageHandler.Update)
	packages.Delete("/:id", packageHandler.Delete)

	// Destinations
	destinations := protected.Group("/destinations")
	destinationHandler := NewDestinationHandler(deps.DestinationUC)
	destinations.Post("/", destinationHandler.Create)
	destinations.Get("/", destinationHandler.List)
	destinations.Put("/reorder", destinationHandler.Reorder)
	destinations.Get("/:id", destinationHandler.GetByID)
	destinations.Put("/:id", destinationHandler.Update)
	destinations.Delete("/:id", destinationHandler.Delete)

	// Activities
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Post("/", activityHandler.Create)
	activities.Get("/", activityHandler.List)
	activities.Put("/reorder", activityHandler.Reorder)
	activities.Get("/:id", activityHandler.GetByID)
	activities.Put("/:id", activityHandler.Update)
	activities.Delete("/:id", activityHandler.Delete)

	// Blogs
	blogs := protected.Group("/blogs")
	blogHandler := NewBlogHandler(deps.BlogUC)
	blogs.Post("/", blogHandler.Create)
	blogs.Get("/", blogHandler.List)
	blogs.Get("/:id", blogHandler.GetByID)
	blogs.Put("/:id", blogHandler.Update)
	blogs.Delete("/:id", blogHandler.Delete)

	// Testimonials
	testimonials := protected.Group("/testimonials")
	testimonialHandler := NewTestimonialHandler(deps.TestimonialUC)
	testimonials.Post("/", testimonialHandler.Create)
	testimonials.Get("/", testimonialHandler.List)
	testimonials.Get("/:id", testimonialHandler.GetByID)
	testimonials.Put("/:id", testimonialHandler.Update)
	testimonials.Delete("/:id", testimonialHandler.Delete)

	// Team
	team := protected.Group("/team")
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Post("/", teamHandler.Create)
	team.Get("/", teamHandler.List)
	team.Put("/reorder", teamHandler.Reorder)
	team.Get("/:id", teamHandler.GetByID)
	team.Put("/:id", teamHandler.Update)
	team.Delete("/:id", teamHandler.Delete)

	// Categories (sin cuota)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/reorder", categoryHandler.Reorder)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Bookings (administración)
	bookings := protected.Group("/bookings")
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id/status", bookingHandler.UpdateStatus)
	bookings.Put("/:id/payment", bookingHandler.UpdatePaymentStatus)
	bookings.Get("/:id/voucher", bookingHandler.Voucher)
	bookings.Delete("/:id", bookingHandler.Delete)

	// Stats (dashboard)
	stats := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Ledger)
	stats.Get("/dashboard", statsHandler.Dashboard)
	stats.Get("/recent", statsHandler.RecentActivity)
	stats.Get("/usage", statsHandler.PlanUsage)
}
