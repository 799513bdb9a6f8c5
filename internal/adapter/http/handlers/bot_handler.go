package handlers

import (
	"errors"
	"net/http"

	request "autocare/internal/adapter/http/dto/request"
	response "autocare/internal/adapter/http/dto/response"
	"autocare/internal/usecase"
	"autocare/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUpdatePayload = pkg.NewDomainErrorSimple("INVALID_UPDATE_INPUT", "Invalid update payload", http.StatusBadRequest)

// BotHandler receives chat updates from the messenger gateway and returns
// the bot's reply.
type BotHandler struct {
	coordinator usecase.ISessionCoordinator
}

func NewBotHandler(coordinator usecase.ISessionCoordinator) *BotHandler {
	return &BotHandler{coordinator: coordinator}
}

// HandleUpdate processes one user turn. A turn the bot chooses to ignore
// (stray text outside any dialog) produces 204 with no body.
func (h *BotHandler) HandleUpdate(c *gin.Context) {
	var payload request.UpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUpdatePayload.HTTPStatus, errInvalidUpdatePayload.ToHTTPError())
		return
	}

	in, err := payload.Payload()
	if err != nil {
		c.JSON(errInvalidUpdatePayload.HTTPStatus, errInvalidUpdatePayload.ToHTTPError())
		return
	}

	prompt, err := h.coordinator.HandleUpdate(c.Request.Context(), payload.UserID, in)
	if err != nil {
		appErr := mapBotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if prompt.IsZero() {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromPrompt(prompt))
}

func mapBotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
