package dto

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Email     string `form:"email" json:"email" validate:"required,email"`
	Password  string `form:"password" json:"password" validate:"required,min=8"`
	FirstName string `form:"first_name" json:"first_name" validate:"omitempty,max=30"`
	LastName  string `form:"last_name" json:"last_name" validate:"omitempty,max=150"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// PasswordChangeRequest is the change form for a logged-in user.
type PasswordChangeRequest struct {
	OldPassword  string `form:"old_password" json:"old_password" validate:"required"`
	NewPassword1 string `form:"new_password1" json:"new_password1" validate:"required,min=8"`
	NewPassword2 string `form:"new_password2" json:"new_password2" validate:"required,eqfield=NewPassword1"`
}

// PasswordResetRequest asks for a reset link by email.
type PasswordResetRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}

// SetPasswordRequest is the confirm step of the reset flow.
type SetPasswordRequest struct {
	NewPassword1 string `form:"new_password1" json:"new_password1" validate:"required,min=8"`
	NewPassword2 string `form:"new_password2" json:"new_password2" validate:"required,eqfield=NewPassword1"`
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
