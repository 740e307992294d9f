package domain

// Role is the closed set of roles a user can hold. Authorization decisions
// only ever compare against these values; unknown strings never match.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a stored role string onto the enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// User is the domain model for account holders. Email doubles as the login
// subject.
type User struct {
	ID           int64
	Name         string
	Description  string
	Email        string
	PasswordHash string
	Icon         string
	Role         Role
}
