package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUserRepo is an in-memory UserRepository for manager tests.
type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	m := make(map[uuid.UUID]*domain.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &stubUserRepo{users: m}
}

func (r *stubUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func issueRequest(t *testing.T, m *Manager, userID uuid.UUID) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, userID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	return req
}

func TestManager_IssueResolve(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	repo := newStubUserRepo(user)
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), repo, true)

	req := issueRequest(t, m, user.ID)

	resolved := m.Resolve(context.Background(), req)
	require.NotNil(t, resolved)
	assert.Equal(t, "alice", resolved.Username)
}

func TestManager_Issue_CookieAttributes(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), newStubUserRepo(user), true)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, user.ID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 60*24*60*60, cookie.MaxAge) // 60 days in seconds
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestManager_Resolve_NoCookie(t *testing.T) {
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), newStubUserRepo(), true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, m.Resolve(context.Background(), req))
}

func TestManager_Resolve_TamperedCookie(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	repo := newStubUserRepo(user)
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), repo, true)

	req := issueRequest(t, m, user.ID)
	cookie, err := req.Cookie(CookieName)
	require.NoError(t, err)

	raw := []byte(cookie.Value)
	if raw[10] == 'a' {
		raw[10] = 'b'
	} else {
		raw[10] = 'a'
	}

	tampered := httptest.NewRequest(http.MethodGet, "/", nil)
	tampered.AddCookie(&http.Cookie{Name: CookieName, Value: string(raw)})

	assert.Nil(t, m.Resolve(context.Background(), tampered))
}

func TestManager_Resolve_DeletedUser(t *testing.T) {
	// A stale session whose account is gone resolves to no user; the
	// missing lookup is the retroactive revocation.
	repo := newStubUserRepo()
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), repo, true)

	req := issueRequest(t, m, uuid.New())
	assert.Nil(t, m.Resolve(context.Background(), req))
}

func TestManager_Resolve_StoreFailure(t *testing.T) {
	// A transient store failure degrades to "not logged in" rather than
	// failing the request.
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	repo := newStubUserRepo(user)
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), repo, true)

	req := issueRequest(t, m, user.ID)

	repo.err = errors.New("store unavailable")
	assert.Nil(t, m.Resolve(context.Background(), req))
}

func TestManager_Resolve_Expired(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	repo := newStubUserRepo(user)

	codec := NewCodec(testSecret, 60*24*time.Hour)
	issued := time.Now()
	codec.now = func() time.Time { return issued }
	m := NewManager(codec, repo, true)

	req := issueRequest(t, m, user.ID)

	// 61 days later the cookie no longer resolves
	codec.now = func() time.Time { return issued.Add(61 * 24 * time.Hour) }
	assert.Nil(t, m.Resolve(context.Background(), req))
}

func TestManager_Destroy(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	repo := newStubUserRepo(user)
	m := NewManager(NewCodec(testSecret, 60*24*time.Hour), repo, true)

	rec := httptest.NewRecorder()
	m.Destroy(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	// Resolving the cleared cookie yields no user
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.Nil(t, m.Resolve(context.Background(), req))
}
