package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/inventario-medico/internal/application/auth"
	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "inventario-medico-test",
}

// fakeUserRepo doble en memoria del repositorio de usuarios.
type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameAlreadyTaken
		}
	}
	user.ID = uuid.NewString()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{Username: "enfermeria", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "enfermeria", out.Username)
	require.NotEmpty(t, out.Token)

	// el token debe ser parseable con el mismo secret
	userID, err := jwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	// el password nunca se guarda en claro
	user, _ := repo.GetByUsername("enfermeria")
	require.NotNil(t, user)
	assert.NotEqual(t, "secreto123", user.PasswordHash)
}

func TestRegister_UsernameCorto_Rechazado(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "ab", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordCorto_Rechazado(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "enfermeria", Password: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Username: "enfermeria", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "enfermeria", Password: "otraclave9"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "farmacia", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "farmacia", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "farmacia", out.Username)
	assert.NotEmpty(t, out.Token)
}

// Usuario inexistente y password incorrecto devuelven el mismo error: la
// respuesta no debe revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	_, err := uc.Register(dto.RegisterRequest{Username: "farmacia", Password: "secreto123"})
	require.NoError(t, err)

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "farmacia", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "no-existe", Password: "secreto123"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

func TestMe_DevuelveUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	out, err := uc.Register(dto.RegisterRequest{Username: "farmacia", Password: "secreto123"})
	require.NoError(t, err)

	userID, err := jwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)

	me, err := uc.Me(userID)
	require.NoError(t, err)
	assert.Equal(t, "farmacia", me.Username)
	assert.Equal(t, userID, me.ID)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)
	_, err := uc.Me(uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
