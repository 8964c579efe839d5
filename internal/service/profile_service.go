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

type ProfileService struct {
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, postRepo repository.PostRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		postRepo:    postRepo,
	}
}

// ProfileDetail is a profile together with the owner's posts and whether the
// viewer may edit it.
type ProfileDetail struct {
	Profile *domain.Profile
	Posts   []*domain.Post
	CanEdit bool
}

type UpdateProfileInput struct {
	ID          uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
}

func (s *ProfileService) GetByID(ctx context.Context, viewer *domain.User, id uuid.UUID) (*ProfileDetail, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	return &ProfileDetail{
		Profile: profile,
		Posts:   posts,
		CanEdit: domain.CanViewProfileEditLink(viewer, profile),
	}, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update edits a profile on behalf of user. The ownership check and the write
// act on a single fetched snapshot of the profile.
func (s *ProfileService) Update(ctx context.Context, user *domain.User, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	if !domain.CanMutateProfile(user, profile) {
		return nil, ErrForbidden
	}

	profile.Name = input.Name
	profile.Email = input.Email
	profile.PhoneNumber = input.PhoneNumber
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
