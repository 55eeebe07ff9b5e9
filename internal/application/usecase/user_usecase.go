package usecase

import (
	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios sin el hash de contraseña.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// SetStatus suspende o reactiva un usuario.
// Whitelist estricta {active, suspended}; un admin no puede cambiar su propio
// estado (regla anti auto-bloqueo).
func (uc *UserUseCase) SetStatus(id, status, actorID string) (*dto.UserResponse, error) {
	if status != entity.UserStatusActive && status != entity.UserStatusSuspended {
		return nil, domain.ErrInvalidStatus
	}
	if actorID == id {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	var user *entity.User
	for _, u := range users {
		if u.ID == id {
			user = u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Status = status
	if err := uc.repo.ReplaceAll(users); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	status := u.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    status,
		CreatedAt: u.CreatedAt,
	}
}
