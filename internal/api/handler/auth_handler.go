package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/api/middleware"
	"github.com/traintrack/training-api/internal/core/ports"
)

// AuthHandler exposes registration, login, and logout. It owns translating
// the service-level token into the HTTP cookie contract.
type AuthHandler struct {
	authService  ports.AuthService
	cookieMaxAge int
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, cookieMaxAge int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    userPayload `json:"user"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]userPayload
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]userPayload{
		"user": {ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login authenticates a user and sets the auth cookie. Unknown email and
// wrong password produce byte-identical 401 responses.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// The session record is durable before the cookie goes out, so a
		// failure here means no cookie at all, never a dangling token.
		return err
	}

	c.SetCookie(middleware.NewTokenCookie(result.Token, h.cookieMaxAge, h.secureCookie))

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		User: userPayload{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
		},
	})
}

// Logout clears the auth cookie and removes the session record.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Request().Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			// Session bookkeeping must not block logout.
			c.Logger().Error(err)
		}
	}

	c.SetCookie(middleware.ClearedTokenCookie(h.secureCookie))
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
