package service

import (
	"github.com/DucTam2411/blog-server/internal/config"
	"github.com/DucTam2411/blog-server/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Post    *PostService
	Profile *ProfileService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := NewPasswordHasher(cfg.BcryptCost)
	return &Services{
		Auth:    NewAuthService(repos.User, hasher),
		Post:    NewPostService(repos.Post, repos.Profile),
		Profile: NewProfileService(repos.Profile, repos.Post),
	}
}
