package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/web/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("web.service")

// AuthService handles account creation, login and logout.
type AuthService interface {
	Register(ctx context.Context, sess *session.Session, form models.RegisterForm, csrfToken string) error
	Login(ctx context.Context, sess *session.Session, form models.LoginForm, csrfToken string) error
	Logout(ctx context.Context, sess *session.Session)
}

type authService struct {
	api resortapi.API
}

func NewAuthService(api resortapi.API) AuthService {
	return &authService{api: api}
}

// Register creates the account and stores a token for it. When the API does
// not hand out a token on creation, one is requested with the same credentials.
func (s *authService) Register(ctx context.Context, sess *session.Session, form models.RegisterForm, csrfToken string) error {
	ctx, span := tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	user, err := s.api.CreateUser(ctx, resortapi.CreateUserRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}, csrfToken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create user failed")
		slog.WarnContext(ctx, "Registration failed", "error", err)
		return fmt.Errorf("create user: %w", err)
	}

	token := user.Token
	if token == "" {
		token, err = s.api.ObtainToken(ctx, resortapi.TokenRequest{Email: form.Email, Password: form.Password}, csrfToken)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "token after registration failed")
			slog.WarnContext(ctx, "Could not obtain token after registration", "error", err)
			return fmt.Errorf("obtain token: %w", err)
		}
	}

	sess.SetToken(token)
	slog.InfoContext(ctx, "User registered", "session.id", sess.ID)
	return nil
}

func (s *authService) Login(ctx context.Context, sess *session.Session, form models.LoginForm, csrfToken string) error {
	ctx, span := tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	token, err := s.api.ObtainToken(ctx, resortapi.TokenRequest{Email: form.Email, Password: form.Password}, csrfToken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		slog.WarnContext(ctx, "Login failed", "error", err)
		return fmt.Errorf("obtain token: %w", err)
	}

	sess.SetToken(token)
	span.SetAttributes(attribute.String("session.id", sess.ID))
	slog.InfoContext(ctx, "User logged in", "session.id", sess.ID)
	return nil
}

// Logout ends the session. The token and the screen state go with it.
func (s *authService) Logout(ctx context.Context, sess *session.Session) {
	wasAuthenticated := sess.Authenticated()
	sess.Destroy()
	slog.InfoContext(ctx, "Session ended", "session.id", sess.ID, "authenticated", wasAuthenticated)
}
