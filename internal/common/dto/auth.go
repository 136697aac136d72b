package dto

// LoginRequest represents a login request. Surface is the application surface
// the user asked for; AdminLink marks the distinguished admin entry path.
type LoginRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Surface   string `json:"surface" binding:"required"`
	AdminLink bool   `json:"adminLink,omitempty"`
}

// RedirectTarget is where the client should navigate after login
type RedirectTarget struct {
	Company string `json:"company,omitempty"`
	Surface string `json:"surface"`
	Portal  bool   `json:"portal,omitempty"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token    string         `json:"token"`
	Redirect RedirectTarget `json:"redirect"`
	User     *UserInfo      `json:"user,omitempty"`
}

// ChangePasswordRequest represents a request to change password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ChangePasswordResponse represents a response to change password
type ChangePasswordResponse struct {
	Success bool `json:"success"`
}

// UserInfo represents the user information stored in the context
type UserInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
