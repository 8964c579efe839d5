package service

import (
	"context"
	"errors"
	"time"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher

	// Digest compared against when the username does not exist, so the
	// missing-user and wrong-password paths cost about the same.
	dummyHash string
}

func NewAuthService(userRepo repository.UserRepository, hasher *PasswordHasher) *AuthService {
	dummy, _ := hasher.Hash(uuid.New().String())
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		dummyHash: dummy,
	}
}

type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	Email       string
	PhoneNumber string
}

type LoginInput struct {
	Username string
	Password string
}

// Register creates a user and its profile in one transaction. Username
// uniqueness is the store's unique constraint; the constraint violation
// is the duplicate signal, so two concurrent registrations cannot both
// slip past a pre-check.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	profile := &domain.Profile{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies a username/password pair. An unknown username and a wrong
// password both yield ErrInvalidCredentials, so the response gives away
// nothing about which usernames exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.hasher.Verify(input.Password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
