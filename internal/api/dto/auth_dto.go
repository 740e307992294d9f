package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"pass"`
}

// LoginResponse is returned on successful authentication. Expiration is a
// human-readable timestamp string.
type LoginResponse struct {
	ID         string `json:"id"`
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
}
