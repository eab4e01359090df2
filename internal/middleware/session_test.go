package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"maori_dictionary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(*model.Identity)
	return identity, args.Error(1)
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"bearer header", "Bearer abc", "", "abc"},
		{"bearer is case insensitive", "bearer  abc ", "", "abc"},
		{"header wins over cookie", "Bearer abc", "from-cookie", "abc"},
		{"cookie only", "", "from-cookie", "from-cookie"},
		{"other scheme falls back to cookie", "Basic dXNlcjpwYXNz", "from-cookie", "from-cookie"},
		{"other scheme without cookie", "Basic dXNlcjpwYXNz", "", ""},
		{"nothing", "", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_token", Value: tc.cookie})
			}
			assert.Equal(t, tc.want, TokenFromRequest(req, "session_token"))
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	identity := &model.Identity{UserID: uuid.New(), Email: "mere@example.com", Role: model.RoleTeacher}

	serve := func(resolver IdentityResolver, token string) (*httptest.ResponseRecorder, *model.Identity, bool) {
		var (
			seen   *model.Identity
			called bool
		)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			seen = IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		SessionMiddleware(resolver, "session_token")(next).ServeHTTP(rec, req)
		return rec, seen, called
	}

	t.Run("no token skips the resolver", func(t *testing.T) {
		resolver := new(mockResolver)
		rec, seen, called := serve(resolver, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Nil(t, seen)
		resolver.AssertNotCalled(t, "CurrentIdentity", mock.Anything, mock.Anything)
	})

	t.Run("resolved identity is put in the context", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("CurrentIdentity", mock.Anything, "tok").Return(identity, nil).Once()
		_, seen, called := serve(resolver, "tok")
		assert.True(t, called)
		assert.Equal(t, identity, seen)
		resolver.AssertExpectations(t)
	})

	t.Run("unresolved token continues anonymously", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("CurrentIdentity", mock.Anything, "stale").Return(nil, nil).Once()
		_, seen, called := serve(resolver, "stale")
		assert.True(t, called)
		assert.Nil(t, seen)
	})

	t.Run("resolver failure stops the request", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("CurrentIdentity", mock.Anything, "tok").Return(nil, errors.New("db down")).Once()
		rec, _, called := serve(resolver, "tok")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, called)
	})
}

func TestMaskBody(t *testing.T) {
	assert.Equal(t, "[SENSITIVE]", maskBody(`{"email":"a@example.com","password":"secret"}`))
	assert.Equal(t, `{"maori":"kau"}`, maskBody(`{"maori":"kau"}`))
}
