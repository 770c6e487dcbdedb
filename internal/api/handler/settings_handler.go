package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/core/ports"
)

// SettingsHandler serves the merged profile + preferences view.
type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

type settingsRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme" validate:"required,oneof=light dark"`
}

// Get returns the authenticated user's settings.
//
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]ports.UserSettings
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.settingsService.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]*ports.UserSettings{"settings": settings})
}

// Update upserts the authenticated user's settings.
//
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      settingsRequest  true  "New settings"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err = h.settingsService.Update(c.Request().Context(), userID, ports.UserSettings{
		Name:          req.Name,
		Email:         req.Email,
		Notifications: req.Notifications,
		Theme:         req.Theme,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}
