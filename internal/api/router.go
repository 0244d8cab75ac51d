package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/veriscan/veriscan-api/docs"
	"github.com/veriscan/veriscan-api/internal/api/handler"
	"github.com/veriscan/veriscan-api/internal/api/middleware"
	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// Deps carries everything the router wires together. Handlers own the
// content; the gate — edge check, resolver, role routing, guards — is
// assembled here and nowhere else, so there is exactly one authorization
// chain to reason about.
type Deps struct {
	Auth      *handler.AuthHandler
	Content   *handler.ContentHandler
	Dashboard *handler.DashboardHandler
	Detection *handler.DetectionHandler
	Health    *handler.HealthHandler
	Readiness *handler.HealthDependenciesHandler

	Resolver ports.ProfileResolver
	Revoker  middleware.TokenRevoker
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("veriscan"))

	// --- Unprotected surface: never touched by the edge gate ---
	e.GET(middleware.LoginPath, deps.Content.LoginPage)
	e.GET("/articles/:slug", deps.Content.Article)

	e.POST("/auth/register", deps.Auth.Register)
	e.POST("/auth/login", deps.Auth.Login)
	e.POST("/auth/logout", deps.Auth.Logout)
	e.GET("/auth/profile", deps.Auth.Profile)

	// --- Health probes (no auth required) ---
	if deps.Health != nil {
		e.GET("/health", deps.Health.Liveness) // liveness  – is the process alive?
	}
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness) // readiness – are dependencies up?
	}

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected surface ---
	// Edge gate first (token presence only), then the session context
	// (resolver + role routing). Handlers run only after resolution has
	// settled on a valid role.
	dash := e.Group("/dashboard",
		middleware.EdgeGate(),
		middleware.SessionContext(deps.Resolver, deps.Revoker, deps.Log),
	)

	dash.GET("", deps.Dashboard.Composition)
	// Overview is deliberately guard-free: it is the unified fallback the
	// denial view offers, so it must be reachable by every valid role.
	dash.GET("/overview", deps.Dashboard.Overview)
	dash.GET("/detections", deps.Dashboard.Detections)
	dash.POST("/detect/:kind", deps.Detection.Detect)

	dash.GET("/analytics", deps.Dashboard.Analytics, middleware.RequireRoles("", domain.RoleBusiness))
	dash.GET("/team", deps.Dashboard.Team, middleware.RequireRoles("", domain.RoleBusiness))
	dash.GET("/account", deps.Dashboard.Account, middleware.RequireRoles("", domain.RoleIndividual))

	return e
}
