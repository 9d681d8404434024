package controller

import (
	"log/slog"
	"net/http"

	"github.com/NotOriginal333/hotel-lab4/internal/csrf"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/web/models"
	"github.com/NotOriginal333/hotel-lab4/internal/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController serves the registration and login screens.
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (ac *AuthController) RegisterForm(c *gin.Context) {
	sess := session.FromContext(c)
	c.HTML(http.StatusOK, "register.html", models.RegisterPage{Layout: layout("Register", sess)})
}

// Register creates the account and stores the issued token in the session.
func (ac *AuthController) Register(c *gin.Context) {
	sess := session.FromContext(c)

	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		slog.InfoContext(c.Request.Context(), "Invalid registration form", "error", err)
		ac.renderRegister(c, http.StatusBadRequest, sess, form)
		return
	}

	if err := ac.authService.Register(c.Request.Context(), sess, form, csrf.FromRequest(c.Request)); err != nil {
		ac.renderRegister(c, statusFor(err), sess, form)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cottages")
}

func (ac *AuthController) renderRegister(c *gin.Context, code int, sess *session.Session, form models.RegisterForm) {
	form.Password = ""
	c.HTML(code, "register.html", models.RegisterPage{
		Layout: layout("Register", sess),
		Form:   form,
		Error:  models.MsgRegisterFailed,
	})
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	sess := session.FromContext(c)
	c.HTML(http.StatusOK, "login.html", models.LoginPage{Layout: layout("Login", sess)})
}

// Login exchanges the credentials for a token and stores it in the session.
func (ac *AuthController) Login(c *gin.Context) {
	sess := session.FromContext(c)

	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		slog.InfoContext(c.Request.Context(), "Invalid login form", "error", err)
		ac.renderLogin(c, http.StatusBadRequest, sess, form)
		return
	}

	if err := ac.authService.Login(c.Request.Context(), sess, form, csrf.FromRequest(c.Request)); err != nil {
		ac.renderLogin(c, statusFor(err), sess, form)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cottages")
}

func (ac *AuthController) renderLogin(c *gin.Context, code int, sess *session.Session, form models.LoginForm) {
	form.Password = ""
	c.HTML(code, "login.html", models.LoginPage{
		Layout: layout("Login", sess),
		Form:   form,
		Error:  models.MsgLoginFailed,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.authService.Logout(c.Request.Context(), session.FromContext(c))
	c.Redirect(http.StatusSeeOther, "/login")
}

func layout(title string, sess *session.Session) models.Layout {
	return models.Layout{Title: title, Authenticated: sess.Authenticated()}
}
