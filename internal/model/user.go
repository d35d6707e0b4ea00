package model

import "time"

const (
	RoleAdmin = "admin"
)

// Capabilities granted to session holders.
const (
	CapabilityContentWrite = "content:write"
	CapabilityMessagesRead = "messages:read"
)

var roleCapabilities = map[string][]string{
	RoleAdmin: {CapabilityContentWrite, CapabilityMessagesRead},
}

// HasCapability reports whether the role carries the given capability.
func HasCapability(role, capability string) bool {
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// User represents an administrator account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
}

// PublicUser is the part of a User that is safe to hand to clients
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public projects the user onto its client-safe fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
