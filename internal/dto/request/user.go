package request

// UpdateProfileRequest covers both PUT and PATCH on /users/me: absent fields
// stay unchanged.
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}
