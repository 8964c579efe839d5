package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username    string
	password    string
	name        string
	email       string
	phoneNumber string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username:    fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
		name:        "Test User",
		email:       "test@example.com",
		phoneNumber: "+14155550100",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the profile name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// Build creates the user and its profile in the database and returns the user
// with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	profile := &domain.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Name:        b.name,
		Email:       b.email,
		PhoneNumber: b.phoneNumber,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return user, b.password
}

// PostBuilder creates test posts
type PostBuilder struct {
	userID uuid.UUID
	title  string
	body   string
}

// NewPostBuilder creates a new PostBuilder with default values
func NewPostBuilder(userID uuid.UUID) *PostBuilder {
	return &PostBuilder{
		userID: userID,
		title:  "Test Post",
		body:   "Test post body content",
	}
}

// WithTitle sets the title
func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.title = title
	return b
}

// WithBody sets the body
func (b *PostBuilder) WithBody(body string) *PostBuilder {
	b.body = body
	return b
}

// Build creates the post in the database
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()

	post := &domain.Post{
		ID:        uuid.New(),
		UserID:    b.userID,
		Title:     b.title,
		Body:      b.body,
		CreatedAt: time.Now(),
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	return post
}

// NewSessionClient returns an http.Client with a cookie jar so session
// cookies survive across requests
func NewSessionClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// RegisterAndLogin registers a fresh user through the API and returns the
// registered user's id plus a client holding its session cookie
func (b *UserBuilder) RegisterAndLogin(t *testing.T, ts *TestServer) (string, *http.Client) {
	t.Helper()

	client := NewSessionClient(t)

	reqBody := map[string]string{
		"username":    b.username,
		"password":    b.password,
		"name":        b.name,
		"email":       b.email,
		"phoneNumber": b.phoneNumber,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := client.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code registering user: %d", resp.StatusCode)
	}

	var userResp struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	return userResp.ID, client
}
