package dto

// AdminLoginRequest is the dashboard login form (HTTP)
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the issued dashboard token (HTTP)
type AdminLoginResponse struct {
	Token  string `json:"token"`
	Expire string `json:"expire"`
}
