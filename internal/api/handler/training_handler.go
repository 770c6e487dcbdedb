package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/core/domain"
	"github.com/traintrack/training-api/internal/core/ports"
)

// TrainingHandler serves the coaching chat and the training history.
type TrainingHandler struct {
	trainingService ports.TrainingService
}

func NewTrainingHandler(trainingService ports.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Chat forwards a message to the AI partner and records the exchange.
//
// @Summary      Coaching chat
// @Tags         training
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "User message"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/chat [post]
func (h *TrainingHandler) Chat(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	feedback, err := h.trainingService.Chat(c.Request().Context(), userID, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": feedback})
}

// List returns the authenticated user's training history, newest first.
//
// @Summary      Training history
// @Tags         training
// @Produce      json
// @Success      200  {object}  map[string][]domain.Training
// @Failure      401  {object}  map[string]string
// @Router       /api/trainings [get]
func (h *TrainingHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	trainings, err := h.trainingService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if trainings == nil {
		trainings = []domain.Training{}
	}

	return c.JSON(http.StatusOK, map[string][]domain.Training{"trainings": trainings})
}
