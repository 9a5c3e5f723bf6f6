package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
)

// NotificationController handles broadcast notifications
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// CreateNotification godoc
// @Summary Send a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.NotificationRequest true "Message"
// @Success 200 {object} dto.NotificationSavedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.notificationService.CreateNotification(ctx, req.Message); err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, "Failed to save notification")
		return
	}

	ctx.JSON(http.StatusOK, dto.NotificationSavedResponse{Success: true, Msg: "Notification saved"})
}

// GetNotifications godoc
// @Summary Latest notifications
// @Description The 20 most recent notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.GetLatestNotifications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}
