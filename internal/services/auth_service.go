package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/models"
	"github.com/theatrelog/api/internal/repository"
	"github.com/theatrelog/api/internal/token"
)

// Sentinel error messages double as the wire-level error text.
// Login failures use one message for both unknown user and wrong
// password so the response does not reveal which field was wrong.
var (
	ErrInvalidCredentials = errors.New("Invalid User ID or Password")
	ErrUserIDTaken        = errors.New("User ID already exists")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrUserNotFound       = errors.New("User not found")
)

type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.FindByUserID(ctx, req.UserID); err == nil {
		return nil, ErrUserIDTaken
	}

	if req.Email != nil {
		if _, err := s.users.FindByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:                  uuid.New(),
		UserID:              req.UserID,
		PasswordHash:        string(hash),
		FullName:            req.FullName,
		Email:               req.Email,
		Specialty:           req.Specialty,
		HospitalAffiliation: req.HospitalAffiliation,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(&user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// CurrentUser resolves a previously authenticated identity back to its
// row; the user may have been removed since the token was issued.
func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	signed, err := s.tokens.Generate(user.ID, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Token: signed,
		User: dto.UserInfo{
			ID:       user.ID,
			UserID:   user.UserID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}
