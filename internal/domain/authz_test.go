package domain_test

import (
	"testing"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutatePost(t *testing.T) {
	owner := &domain.User{ID: uuid.New(), Username: "alice"}
	other := &domain.User{ID: uuid.New(), Username: "bob"}
	post := &domain.Post{ID: uuid.New(), UserID: owner.ID, Title: "t", Body: "b"}

	tests := []struct {
		name string
		user *domain.User
		post *domain.Post
		want bool
	}{
		{name: "owner", user: owner, post: post, want: true},
		{name: "other user", user: other, post: post, want: false},
		{name: "no user", user: nil, post: post, want: false},
		{name: "no post", user: owner, post: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanMutatePost(tt.user, tt.post))
		})
	}
}

func TestCanMutateProfile(t *testing.T) {
	owner := &domain.User{ID: uuid.New(), Username: "alice"}
	other := &domain.User{ID: uuid.New(), Username: "bob"}
	profile := &domain.Profile{ID: uuid.New(), UserID: owner.ID}

	tests := []struct {
		name    string
		user    *domain.User
		profile *domain.Profile
		want    bool
	}{
		{name: "owner", user: owner, profile: profile, want: true},
		{name: "other user", user: other, profile: profile, want: false},
		{name: "no user", user: nil, profile: profile, want: false},
		{name: "no profile", user: owner, profile: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanMutateProfile(tt.user, tt.profile))
		})
	}
}

func TestCanViewProfileEditLink(t *testing.T) {
	owner := &domain.User{ID: uuid.New(), Username: "alice"}
	other := &domain.User{ID: uuid.New(), Username: "bob"}
	profile := &domain.Profile{ID: uuid.New(), UserID: owner.ID}

	// Same rule as mutation
	assert.True(t, domain.CanViewProfileEditLink(owner, profile))
	assert.False(t, domain.CanViewProfileEditLink(other, profile))
	assert.False(t, domain.CanViewProfileEditLink(nil, profile))
}
