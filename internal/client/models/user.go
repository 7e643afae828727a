package models

// User is the authenticated identity. Password and id are never kept.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterData carries the fields needed to create an account.
type RegisterData struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginData carries credentials for a login attempt.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ResetPasswordData carries the emailed token and the new password.
type ResetPasswordData struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
