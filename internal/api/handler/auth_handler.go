package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/api/middleware"
	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// AuthHandler exposes the identity-provider endpoints: login, logout,
// registration, and the bearer-token profile fetch the gate resolves
// against.
type AuthHandler struct {
	authService ports.AuthService
	tokenMaxAge int
}

func NewAuthHandler(authService ports.AuthService, tokenMaxAge int) *AuthHandler {
	return &AuthHandler{authService: authService, tokenMaxAge: tokenMaxAge}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=individual business"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// messageResponse is the login failure envelope; the message is surfaced
// verbatim to the user.
type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Data struct {
		User *domain.Profile `json:"user"`
	} `json:"data"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "role must be individual or business"})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and issues a session token. The token is
// returned in the body and persisted in the session cookie; on any
// failure the body carries a message for verbatim display.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid email or password"})
		case errors.Is(err, domain.ErrUserInactive):
			return c.JSON(http.StatusForbidden, messageResponse{Message: "this account has been deactivated"})
		}
		return err
	}

	middleware.SetSessionCookie(c, token, h.tokenMaxAge)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout revokes the session record, clears the cookie, and redirects to
// the login route — strictly in that order, so the edge gate never sees
// a half-destroyed session.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.Token(c)
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Profile exchanges a bearer token for the authoritative user profile.
//
// @Summary      Fetch the profile for a session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	token := middleware.Token(c)
	if token == "" {
		return domain.ErrNoSession
	}

	profile, err := h.authService.Profile(c.Request().Context(), token)
	if err != nil {
		return err
	}

	var resp profileResponse
	resp.Data.User = profile
	return c.JSON(http.StatusOK, resp)
}
