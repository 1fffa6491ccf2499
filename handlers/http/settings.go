package httpHandler

import (
	"net/http"

	"home-monitor/usecases"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	useCase *usecases.UserUseCase
}

func NewSettingsHandler(useCase *usecases.UserUseCase) *SettingsHandler {
	return &SettingsHandler{useCase: useCase}
}

// Get handles GET /settings/user
func (h *SettingsHandler) Get(c *gin.Context) {
	user, err := h.useCase.Settings(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
	})
}

// Update handles PUT /settings/user: only the provided fields change.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	err := h.useCase.UpdateSettings(currentUserID(c), usecases.SettingsUpdateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// Devices handles GET /user/devices
func (h *SettingsHandler) Devices(c *gin.Context) {
	devices, err := h.useCase.Devices(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": devices, "count": len(devices)})
}
