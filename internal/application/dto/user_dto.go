package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse respuesta de login/register: token JWT y usuario.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// UserResponse respuesta de GET /api/auth/me.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
