package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
	"github.com/tu-usuario/ventas-api/pkg/password"
)

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles map[int64]*entity.Role
}

func (f *fakeRoleRepo) Create(r *entity.Role) error {
	r.ID = int64(len(f.roles) + 1)
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	return f.roles[id], nil
}

func (f *fakeRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

var testJWTCfg = jwt.Config{
	Secret:     "secreto-de-pruebas",
	Issuer:     "ventas-api",
	Audience:   "ventas-api-clients",
	ExpMinutes: 15,
}

func buildAuth() (*auth.AuthUseCase, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: map[int64]*entity.User{}}
	roleRepo := &fakeRoleRepo{roles: map[int64]*entity.Role{
		1: {ID: 1, Name: entity.RoleAdmin},
		2: {ID: 2, Name: entity.RoleUser},
	}}
	return auth.NewAuthUseCase(userRepo, roleRepo, testJWTCfg), userRepo
}

func TestRegister_OK(t *testing.T) {
	uc, repo := buildAuth()

	out, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", RoleID: 2})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleUser, out.Role)

	// El hash persistido verifica el secreto original y nunca lo contiene plano.
	stored := repo.users[out.ID]
	assert.True(t, password.Verify("s3creta", stored.PasswordHash))
	assert.NotContains(t, stored.PasswordHash, "s3creta")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", RoleID: 2})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "otra", RoleID: 2})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", RoleID: 99})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "x", RoleID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "x", Password: "", RoleID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_OK(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "admin", Password: "clave-admin", RoleID: 1})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "clave-admin"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token emitido se valida con la misma config y porta el rol.
	claims, err := jwt.Parse(testJWTCfg, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", RoleID: 2})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProfile_OK(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", RoleID: 2})
	require.NoError(t, err)

	out, err := uc.Profile("maria")
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleUser, out.Role)
}

// Token válido pero cuenta borrada: el perfil ya no resuelve.
func TestProfile_CuentaInexistente(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Profile("borrado")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Username: "a", Password: "x", RoleID: 1})
	require.NoError(t, err)
	_, err = uc.Register(dto.RegisterRequest{Username: "b", Password: "y", RoleID: 2})
	require.NoError(t, err)

	list, err := uc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
