package httpHandler

import (
	"encoding/json"
	"net/http"
	"time"

	"home-monitor/utils"
	"home-monitor/ws"

	"github.com/gin-gonic/gin"
)

type AlarmHandler struct {
	mgr *ws.Manager
}

func NewAlarmHandler(mgr *ws.Manager) *AlarmHandler {
	return &AlarmHandler{mgr: mgr}
}

// AlarmOff handles GET /devices/:device_id/alarm/off: pushes a set_alarm_off
// command over the device's live connection. Fire-and-forget; fails when the
// device is not connected.
func (h *AlarmHandler) AlarmOff(c *gin.Context) {
	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	payload, _ := json.Marshal(gin.H{
		"type":      "command",
		"command":   "set_alarm_off",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err := h.mgr.SendToDevice(deviceID, payload); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Command sent"})
}

// Connected handles GET /devices/connected.
func (h *AlarmHandler) Connected(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"devices": ids, "count": len(ids)})
}
