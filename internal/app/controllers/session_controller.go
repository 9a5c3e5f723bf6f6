package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// SessionController handles interview sessions
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// GetSessions godoc
// @Summary List sessions as calendar events
// @Description Sessions ordered by start time, with the company as the event title
// @Tags sessions
// @Produce json
// @Success 200 {array} dto.SessionEvent
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [get]
func (c *SessionController) GetSessions(ctx *gin.Context) {
	events, err := c.sessionService.GetSessionEvents(ctx)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, "Failed to fetch sessions")
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateSession godoc
// @Summary Add a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Company and start time"
// @Success 200 {object} dto.SessionCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionCreatedResponse{
		Message: "Session added successfully",
		Session: session,
	})
}

// UpdateSession godoc
// @Summary Update a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} models.Session
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{id} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "session")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateSessionRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.UpdateSession(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	id, err := parseObjectIDParam(ctx, "id", "session")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessionService.DeleteSession(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Session deleted"})
}
