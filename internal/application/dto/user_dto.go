package dto

// SetUserStatusRequest entrada del PATCH de estado de usuario (admin).
type SetUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}
