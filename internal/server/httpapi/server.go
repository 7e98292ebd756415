// Package httpapi exposes the FormHub HTTP JSON surface: signup/login,
// admin form management, and anonymous submission ingestion.
package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/formhub/internal/logging"
	"github.com/dmitrijs2005/formhub/internal/server/auth"
	"github.com/dmitrijs2005/formhub/internal/server/forms"
	"github.com/dmitrijs2005/formhub/internal/server/users"
	"github.com/gofiber/fiber/v2"
)

type userService interface {
	Register(ctx context.Context, name, email, password, role string) (*users.User, error)
	Login(ctx context.Context, email, password string) (token string, role string, err error)
}

type formService interface {
	Create(ctx context.Context, claims *auth.Claims, formName string, fields []forms.FormField) (*forms.Form, error)
	ListOwn(ctx context.Context, claims *auth.Claims) ([]forms.Form, error)
	Submit(ctx context.Context, formID string, data map[string]any) error
}

type Server struct {
	address   string
	logger    logging.Logger
	users     userService
	forms     formService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us userService, fs formService, secretKey string) (*Server, error) {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		forms:     fs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/api/auth/signup", s.signup)
	app.Post("/api/auth/login", s.login)
	app.Post("/api/forms/create", s.authenticate, s.createForm)
	app.Get("/api/forms/admin-dashboard", s.authenticate, s.adminDashboard)
	app.Post("/api/forms/submit/:formId", s.submitForm)

	return app
}

func (s *Server) Run(ctx context.Context) error {

	app := s.newApp()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := app.Listen(s.address); err != nil {
		return err
	}

	return nil
}

// userContext returns the request-scoped context for downstream calls.
func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
