package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Estados válidos para User (whitelist del PATCH de administración).
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User representa un usuario de la tienda.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"` // bcrypt; nunca se serializa hacia la API
	Role         string    `json:"role"`
	Status       string    `json:"status,omitempty"` // active | suspended; vacío cuenta como active
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Active indica si el usuario puede iniciar sesión.
func (u *User) Active() bool {
	return u.Status == "" || u.Status == UserStatusActive
}
