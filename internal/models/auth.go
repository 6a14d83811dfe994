package models

// LoginRequest — тело POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse — успешный ответ логина.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorBody — тело ошибки бэкенда: flask-restx отдаёт {"message"},
// ручные ответы — {"error"}.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text — первое непустое из message/error.
func (b ErrorBody) Text() string {
	if b.Message != "" {
		return b.Message
	}

	return b.Error
}
