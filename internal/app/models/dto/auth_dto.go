package dto

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Message          string `json:"message"`
	UserID           int64  `json:"user_id"`
	RequiresApproval bool   `json:"requires_approval"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the safe user payload returned on login (no hash)
type LoginUser struct {
	ID         int64   `json:"id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
	AvatarURL  *string `json:"avatar_url"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}
