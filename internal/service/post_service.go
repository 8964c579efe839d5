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

var ErrForbidden = errors.New("forbidden")

type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

type CreatePostInput struct {
	Title string
	Body  string
}

// PostListItem is a post joined with its author's display data.
type PostListItem struct {
	Post            *domain.Post
	AuthorName      string
	AuthorProfileID uuid.UUID
}

func (s *PostService) Create(ctx context.Context, user *domain.User, input CreatePostInput) (*domain.Post, error) {
	if user == nil {
		return nil, ErrForbidden
	}

	post := &domain.Post{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first, with the author's profile name
// attached for display.
func (s *PostService) List(ctx context.Context) ([]*PostListItem, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make(map[uuid.UUID]*domain.Profile)
	items := make([]*PostListItem, 0, len(posts))
	for _, post := range posts {
		profile, ok := profiles[post.UserID]
		if !ok {
			profile, err = s.profileRepo.GetByUserID(ctx, post.UserID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			profiles[post.UserID] = profile
		}

		item := &PostListItem{Post: post}
		if profile != nil {
			item.AuthorName = profile.Name
			item.AuthorProfileID = profile.ID
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a post on behalf of user. The ownership check and the delete
// act on a single fetched snapshot of the post.
func (s *PostService) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if !domain.CanMutatePost(user, post) {
		return ErrForbidden
	}

	return s.postRepo.Delete(ctx, post.ID)
}
