package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// GoogleLoginRequest carries the ID token produced by the client-side
// federated sign-in popup.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

// Validate runs the local checks that must pass before any external call is
// made. Mismatched passwords are reported ahead of the length check.
func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password != r.ConfirmPassword {
		errors["confirm_password"] = "Passwords do not match."
	} else if len(r.Password) < 6 {
		errors["password"] = "Password should be at least 6 characters long."
	}

	return errors
}
