package server

import (
	"fmt"
	"net/http"

	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/web/controller"
	"github.com/NotOriginal333/hotel-lab4/internal/web/templates"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(
	sessions *session.Manager,
	authController *controller.AuthController,
	cottageController *controller.CottageController,
	healthController *controller.HealthController,
) (*Server, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogging())
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", healthController.Health)

	pages := r.Group("/", sessions.Middleware())
	{
		pages.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/cottages")
		})

		pages.GET("/register", authController.RegisterForm)
		pages.POST("/register", authController.Register)
		pages.GET("/login", authController.LoginForm)
		pages.POST("/login", authController.Login)
		pages.POST("/logout", authController.Logout)

		pages.GET("/cottages", cottageController.List)
		pages.POST("/cottages/more", cottageController.More)
		pages.GET("/cottages/:id", cottageController.Detail)
		pages.POST("/cottages/:id/availability", cottageController.CheckAvailability)
		pages.POST("/cottages/:id/booking", cottageController.Book)
	}

	return &Server{engine: r}, nil
}

// Engine returns the routes wrapped in server-side tracing.
func (s *Server) Engine() http.Handler {
	return otelhttp.NewHandler(s.engine, "resort-web",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
