package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
	"github.com/malithvisio/magcin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro de root users, alta de
// members y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterRootUser crea el dueño de un tenant nuevo: plan free, company y
// tenant recién generados, contadores de uso en cero.
func (uc *AuthUseCase) RegisterRootUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	id := uuid.New().String()
	user := &entity.User{
		ID:           id,
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleRootUser,
		IsRootUser:   true,
		RootUserID:   id,
		CompanyID:    uuid.New().String(),
		TenantID:     uuid.New().String(),
		Plan:         domain.PlanFree,
		UsageStats:   map[domain.ResourceKind]int{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RegisterMember crea una cuenta member/admin bajo el tenant del caller. Los
// members heredan rootUserId/companyId/tenantId y no tienen cuota propia.
func (uc *AuthUseCase) RegisterMember(ctx context.Context, tc domain.TenantContext, in dto.RegisterMemberRequest) (*dto.UserResponse, error) {
	if !tc.IsRoot() && tc.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = domain.RoleMember
	}
	if role != domain.RoleAdmin && role != domain.RoleMember {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsRootUser:   false,
		RootUserID:   tc.RootUserID,
		CompanyID:    tc.CompanyID,
		TenantID:     tc.TenantID,
		Plan:         tc.Plan,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT con los claims del tenant y
// retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.TokenData{
		UserID:     user.ID,
		RootUserID: user.EffectiveRootID(),
		CompanyID:  user.CompanyID,
		TenantID:   user.TenantID,
		Role:       user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsRootUser: u.IsRootUser,
		RootUserID: u.EffectiveRootID(),
		CompanyID:  u.CompanyID,
		TenantID:   u.TenantID,
		Plan:       string(u.Plan),
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
