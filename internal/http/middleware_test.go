package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/auth"
)

func TestSessionMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	token, err := tokens.Issue("sess-7")
	require.NoError(t, err)

	var gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID = getSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	wrapped := SessionMiddleware(tokens)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSessionID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "sess-7", gotSessionID)
			}
		})
	}
}

func TestSessionMiddleware_RejectsTokenSignedElsewhere(t *testing.T) {
	other := auth.NewTokenManager([]byte("other-secret"), time.Hour)
	token, err := other.Issue("sess-7")
	require.NoError(t, err)

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	wrapped := SessionMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
