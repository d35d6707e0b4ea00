package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt verification.
var dummyHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword("portfolio-dummy-password")
	if err != nil {
		return ""
	}
	return hash
})

// AuthService provides authentication related services
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	Verify(token string) (*utils.JWTClaims, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Authenticate checks the credentials and returns the user with a signed
// session token. Unknown email and wrong password fail identically.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		utils.CheckPasswordHash(password, dummyHash())
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Verify validates a bearer token and returns its claims
func (s *authService) Verify(token string) (*utils.JWTClaims, error) {
	return s.jwtUtil.ValidateToken(token)
}
