package dto

import "github.com/tu-curso/course-service/internal/domain"

// UserCreateRequest payload for new accounts.
type UserCreateRequest struct {
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Password    string `json:"pass"`
	Description string `json:"descripcion"`
	Icon        string `json:"icono"`
}

// UserUpdateRequest payload for profile updates.
type UserUpdateRequest struct {
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Password    string `json:"pass"`
	Description string `json:"descripcion"`
	Icon        string `json:"icono"`
}

// UserResponse is the public projection of a user. The password hash never
// leaves the server.
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Icon        string `json:"icono"`
}

// FromUser maps a domain user onto its public projection.
func FromUser(user domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Description: user.Description,
		Icon:        user.Icon,
	}
}

// FromUsers maps a slice of domain users.
func FromUsers(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, FromUser(user))
	}
	return out
}
