package auth

import (
	"strings"

	"github.com/mfigueroa/inventario-medico/internal/application/dto"
	"github.com/mfigueroa/inventario-medico/internal/domain"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/domain/repository"
	"github.com/mfigueroa/inventario-medico/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login y sesión.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt, persiste y emite
// token. Username mínimo 3 caracteres, password mínimo 6.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Username: user.Username}, nil
}

// Login verifica username/password y emite un JWT.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Username: user.Username}, nil
}

// Me devuelve el usuario de la sesión actual.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username}, nil
}
