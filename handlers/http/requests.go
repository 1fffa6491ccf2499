package httpHandler

type SignupRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=50"`
	LastName     string `json:"last_name" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email,max=100"`
	PhoneNumber  string `json:"phone_number" binding:"required,max=20"`
	ZipCode      string `json:"zip_code" binding:"required,max=7"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Password     string `json:"password" binding:"required,min=8,max=16"`
}

// LoginRequest binds the OAuth2-style password form: username carries the
// email address.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SettingsUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
}

type AlarmOnRequest struct {
	Message string `json:"message" binding:"required"`
}
