package domain

// Principal is the opaque caller identity the remote actor authorizes by.
type Principal string

// UserRole enumerates the access levels known to the remote actor.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// UserProfile is the profile record the actor keeps per principal.
type UserProfile struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Organization *string `json:"organization,omitempty"`
}
