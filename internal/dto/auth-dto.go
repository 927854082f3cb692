package dto

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	UniversitySlug string `json:"university_slug"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the verified JWT claims through the request.
type AuthResponse struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	UniversityID string  `json:"university_id"`
	Expiry       float64 `json:"exp"`
	Iat          float64 `json:"iat"`
}

type UpdateUserProfile struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
