package httpHandler

import (
	"net/http"

	"home-monitor/usecases"
	"home-monitor/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}
	if !utils.IsPhoneNumber(req.PhoneNumber) {
		respondValidation(c, "Phone number format is not correct")
		return
	}
	if !utils.IsZipCode(req.ZipCode) {
		respondValidation(c, "Zip code format is not correct")
		return
	}
	if !utils.IsUUID(req.SerialNumber) {
		respondValidation(c, "Serial number format is not correct")
		return
	}

	err := h.useCase.Signup(usecases.SignupInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		ZipCode:      req.ZipCode,
		SerialNumber: req.SerialNumber,
		Password:     req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signup completed"})
}

// Login handles POST /login with a username/password form body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	tokens, err := h.useCase.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}
