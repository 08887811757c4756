package services

import (
	"context"
	"errors"
	"log"

	"psiconnect-backend/internal/adapters/persistence/models"
	"psiconnect-backend/internal/adapters/persistence/repositories"
	"psiconnect-backend/internal/config"
	"psiconnect-backend/internal/pkg/jwt"
	"psiconnect-backend/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUsuarioNotFound    = errors.New("usuario not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	usuarioRepo      repositories.UsuarioRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	usuarioRepo repositories.UsuarioRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		usuarioRepo:      usuarioRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Usuario      *models.UsuarioResponse `json:"usuario"`
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
}

// Login authenticates a usuario by email and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	usuario, err := s.usuarioRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, usuario.Password) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, usuario.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	log.Printf("✅ Usuario logged in: %s", usuario.Email)

	return &AuthResponse{
		Usuario:      usuario.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the refresh token and issues a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, claims.UsuarioID)
	if err != nil {
		return nil, ErrUsuarioNotFound
	}

	// Token rotation: the presented refresh token is single-use
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, usuario.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Usuario:      usuario.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes every refresh token of a usuario
func (s *AuthService) LogoutAll(ctx context.Context, usuarioID uint) error {
	return s.refreshTokenRepo.RevokeAllByUsuarioID(ctx, usuarioID)
}

// GetUsuarioByID gets a usuario by ID
func (s *AuthService) GetUsuarioByID(ctx context.Context, usuarioID uint) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return usuario, nil
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(usuario *models.Usuario) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		usuario.ID,
		usuario.Email,
		usuario.RolNames(),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		usuario.ID,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// storeRefreshToken stores a refresh token hash in the database
func (s *AuthService) storeRefreshToken(ctx context.Context, usuarioID uint, refreshToken string) error {
	token := &models.RefreshToken{
		UsuarioID: usuarioID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
