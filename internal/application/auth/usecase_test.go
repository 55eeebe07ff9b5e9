package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-ecommerce/storefront-api/internal/application/auth"
	"github.com/acme-ecommerce/storefront-api/internal/application/dto"
	"github.com/acme-ecommerce/storefront-api/internal/domain"
	"github.com/acme-ecommerce/storefront-api/internal/domain/entity"
	"github.com/acme-ecommerce/storefront-api/internal/infrastructure/jsonstore"
	"github.com/acme-ecommerce/storefront-api/pkg/jwt"
)

const testSecret = "secreto-de-test-para-jwt"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *jsonstore.UserStore) {
	t.Helper()
	store, err := jsonstore.NewUserStore(t.TempDir())
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "storefront-test",
	})
	return uc, store
}

func TestRegister_CreaCustomer(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "Ana@Test.com",
		Password: "Secreta123!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana@test.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleCustomer, out.Role, "el registro público nunca crea admins")
	assert.Equal(t, entity.UserStatusActive, out.Status)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@test.com", Password: "Secreta123!"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ANA@test.com", Password: "OtraClave1!"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc, _ := newAuthUC(t)
	created, err := uc.Register(dto.RegisterRequest{Email: "ana@test.com", Password: "Secreta123!"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "Secreta123!"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	userID, email, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "ana@test.com", email)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestLogin_AdminSembrado(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: jsonstore.DefaultAdminEmail, Password: "Admin123!"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@test.com", Password: "Secreta123!"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestLogin_SuspendidoNoEntra: la suspensión bloquea el login aunque las
// credenciales sean correctas.
func TestLogin_SuspendidoNoEntra(t *testing.T) {
	uc, store := newAuthUC(t)
	created, err := uc.Register(dto.RegisterRequest{Email: "ana@test.com", Password: "Secreta123!"})
	require.NoError(t, err)

	users, err := store.LoadAll()
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == created.ID {
			u.Status = entity.UserStatusSuspended
		}
	}
	require.NoError(t, store.ReplaceAll(users))

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.com", Password: "Secreta123!"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
