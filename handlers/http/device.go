package httpHandler

import (
	"net/http"

	"home-monitor/repositories"
	"home-monitor/usecases"
	"home-monitor/utils"

	"github.com/gin-gonic/gin"
)

type DeviceDataHandler struct {
	readings *usecases.ReadingUseCase
}

func NewDeviceDataHandler(readings *usecases.ReadingUseCase) *DeviceDataHandler {
	return &DeviceDataHandler{readings: readings}
}

// Live handles GET /device-data/:device_id/live. Fields for streams with no
// data are null.
func (h *DeviceDataHandler) Live(c *gin.Context) {
	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	live, err := h.readings.Live(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"temperature_celsius": live.Temperature,
		"humidity":            live.Humidity,
		"alarm":               live.Alarm,
	})
}

// Historical handles GET /device-data/:device_id/historical/:window
func (h *DeviceDataHandler) Historical(c *gin.Context) {
	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	window := repositories.Window(c.Param("window"))
	switch window {
	case repositories.WindowDay, repositories.WindowWeek, repositories.WindowMonth:
	default:
		respondValidation(c, "Window must be one of day, week, month")
		return
	}

	rows, err := h.readings.Historical(deviceID, window)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
}

// HistoricalAlarm handles GET /device-data/:device_id/historical-alarm
func (h *DeviceDataHandler) HistoricalAlarm(c *gin.Context) {
	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	rows, err := h.readings.HistoricalAlarm(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
}
