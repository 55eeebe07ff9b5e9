package jsonstore

import (
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// Credenciales del admin por defecto que se siembra en el primer arranque.
const (
	DefaultAdminEmail    = "admin@acme.com"
	defaultAdminPassword = "Admin123!"
)

// UserStore persistencia de usuarios en users.json.
type UserStore struct {
	mu   sync.Mutex
	path string
}

// NewUserStore construye el almacén. Si el archivo no existe lo siembra con el
// usuario administrador por defecto (cambiar la contraseña en el primer login).
func NewUserStore(dataDir string) (*UserStore, error) {
	s := &UserStore{path: filepath.Join(dataDir, "users.json")}
	if !fileExists(s.path) {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &entity.User{
			ID:           "admin-1",
			Name:         "Administrador",
			Email:        DefaultAdminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Status:       entity.UserStatusActive,
			CreatedAt:    time.Now(),
		}
		if err := writeJSON(s.path, []*entity.User{admin}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadAll devuelve todos los usuarios.
func (s *UserStore) LoadAll() ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[*entity.User](s.path)
}

// ReplaceAll sobreescribe el conjunto completo de usuarios.
func (s *UserStore) ReplaceAll(users []*entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, users)
}
