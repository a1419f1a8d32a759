package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/campusxp/experience-api/docs"
	"github.com/campusxp/experience-api/internal/api/handler"
	"github.com/campusxp/experience-api/internal/api/middleware"
	"github.com/campusxp/experience-api/internal/core/ports"
	"github.com/campusxp/experience-api/internal/metrics"
	"github.com/campusxp/experience-api/pkg/logger"
)

const DefaultPrefix = "/api/record"

// Dependencies is everything the router needs. Registerer and Gatherer
// default to the global Prometheus registry.
type Dependencies struct {
	Users        ports.UserService
	Experiences  ports.ExperienceService
	Universities ports.UniversityService
	Credentials  ports.CredentialRepository
	HealthChecks []handler.DependencyCheck

	Logger           zerolog.Logger
	APIPrefix        string
	SummaryMaxLength int

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	prefix := deps.APIPrefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	// Same contract as echoprometheus: a collector clash is a wiring bug.
	if err := metrics.Register(deps.Registerer); err != nil {
		panic(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(deps.SummaryMaxLength)
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, prefix)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "campusxp",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational routes (no gatekeeper) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))

	docs.SwaggerInfo.BasePath = prefix
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	api := e.Group(prefix, middleware.Auth(middleware.AuthConfig{
		Credentials: deps.Credentials,
		Logger:      logger.Component(deps.Logger, "gatekeeper"),
		Prefix:      prefix,
	}))

	userHandler := handler.NewUserHandler(deps.Users)
	user := api.Group("/user")
	user.POST("/register", userHandler.Register, handler.ValidateCreateUser())
	user.POST("/session", userHandler.Session, handler.ValidateSession())
	user.PATCH("/:id", userHandler.Update, handler.ValidateUpdateUser())
	user.GET("/:id", userHandler.Get)

	expHandler := handler.NewExperienceHandler(deps.Experiences)
	exp := api.Group("/experience")
	exp.POST("", expHandler.Create, handler.ValidateExperience())
	exp.GET("", expHandler.List)
	exp.GET("/:id", expHandler.Get)
	exp.PUT("/:id", expHandler.Update, handler.ValidateExperience())
	exp.DELETE("/:id", expHandler.Delete)

	univHandler := handler.NewUniversityHandler(deps.Universities)
	univ := api.Group("/university")
	univ.GET("", univHandler.List)
	univ.GET("/:id", univHandler.Get)

	return e
}
