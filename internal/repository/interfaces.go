package repository

import (
	"context"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// CreateWithProfile persists the user and its profile atomically.
	CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetAll(ctx context.Context) ([]*domain.Post, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User    UserRepository
	Profile ProfileRepository
	Post    PostRepository
}
