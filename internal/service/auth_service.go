package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
)

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account has been deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new user account and returns a signed token
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login authenticates a user and returns a signed token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// GetProfile retrieves the current user's profile
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	// UpdateProfile updates the current user's profile
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

// authService implements AuthService
type authService struct {
	userRepo  repository.UserRepository
	orgRepo   repository.OrganizationRepository
	jwtSecret string
	tokenTTL  time.Duration
	issuer    string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtSecret string, tokenTTL time.Duration, issuer string) AuthService {
	return &authService{
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		issuer:    issuer,
	}
}

// Register creates a new user account and returns a signed token
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	existing, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(req.Name, req.Email, string(hash), req.Role)
	if err != nil {
		return nil, err
	}

	// New accounts join the default organization when one exists.
	defaultOrg, err := s.orgRepo.GetBySlug(ctx, domain.DefaultOrgSlug)
	if err != nil {
		return nil, err
	}
	if defaultOrg != nil {
		user.OrgID = &defaultOrg.ID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Login authenticates a user and returns a signed token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// GetProfile retrieves the current user's profile
func (s *authService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates the current user's profile
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// signToken issues an HS256 token carrying only the user ID. Everything
// else about the user is re-read from the database on each request.
func (s *authService) signToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     s.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// normalizeEmail mirrors the normalization applied by domain.NewUser.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
