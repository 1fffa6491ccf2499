package httpHandler

import (
	"net/http"

	"home-monitor/apperrors"
	"home-monitor/services"
	"home-monitor/usecases"
	"home-monitor/utils"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	users   *usecases.UserUseCase
	weather *services.WeatherClient
}

func NewWeatherHandler(users *usecases.UserUseCase, weather *services.WeatherClient) *WeatherHandler {
	return &WeatherHandler{users: users, weather: weather}
}

// Get handles GET /weather-info/:lang/:device_id: proxies current weather at
// the device's coordinates.
func (h *WeatherHandler) Get(c *gin.Context) {
	lang := c.Param("lang")
	if lang != "en" && lang != "ja" {
		respondError(c, apperrors.ErrWeatherLangSupport)
		return
	}

	deviceID := c.Param("device_id")
	if !utils.IsUUID(deviceID) {
		respondValidation(c, "Device id format is not correct")
		return
	}

	device, err := h.users.Device(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	weather, err := h.weather.Current(device.Latitude, device.Longitude, lang)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, weather)
}
