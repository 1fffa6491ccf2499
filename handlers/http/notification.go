package httpHandler

import (
	"net/http"
	"strconv"

	"home-monitor/usecases"
	"home-monitor/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	useCase *usecases.NotificationUseCase
}

func NewNotificationHandler(useCase *usecases.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{useCase: useCase}
}

// List handles GET /notifications for the authenticated user.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.useCase.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notifications, "count": len(notifications)})
}

// Acknowledge handles PUT /notifications/:notification_id. Marks the
// notification read; acknowledging twice is a no-op success.
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil {
		respondValidation(c, "Notification id must be an integer")
		return
	}

	if err := h.useCase.Acknowledge(uint(notificationID), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// AlarmOn handles POST /devices/:device_id/alarm/on: texts the operator
// number about the triggered alarm.
func (h *NotificationHandler) AlarmOn(c *gin.Context) {
	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	var req AlarmOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	if err := h.useCase.Notify(req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}
