package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"teacup/internal/apperrors"
	"teacup/internal/middleware"
	"teacup/internal/models"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	c.Request = req
	return c, w
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/posts", 1, DefaultPageSize},
		{"explicit", "/posts?page=3&page_size=50", 3, 50},
		{"zero page", "/posts?page=0", 1, DefaultPageSize},
		{"negative page", "/posts?page=-2", 1, DefaultPageSize},
		{"page size over cap", "/posts?page_size=500", 1, MaxPageSize},
		{"page size at cap", "/posts?page_size=100", 1, 100},
		{"garbage input", "/posts?page=abc&page_size=xyz", 1, DefaultPageSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, tc.url)
			page, pageSize := ParsePagination(c)
			if page != tc.wantPage {
				t.Errorf("page = %d, want %d", page, tc.wantPage)
			}
			if pageSize != tc.wantPageSize {
				t.Errorf("pageSize = %d, want %d", pageSize, tc.wantPageSize)
			}
		})
	}
}

func TestJSONError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperrors.Forbiddenf("not yours"), http.StatusForbidden},
		{"not found", apperrors.NotFoundf("post not found"), http.StatusNotFound},
		{"validation", apperrors.Validationf("content too long"), http.StatusBadRequest},
		{"duplicate", apperrors.Duplicatef("already liked"), http.StatusBadRequest},
		{"store unavailable", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestContext(t, "/")
			JSONError(c, tc.err)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		c, _ := newTestContext(t, "/")
		if got := CurrentUser(c); got != nil {
			t.Errorf("CurrentUser = %v, want nil", got)
		}
	})

	t.Run("logged in", func(t *testing.T) {
		c, _ := newTestContext(t, "/")
		user := &models.User{Username: "alice"}
		user.ID = 1
		c.Set(middleware.CheckUserKey, user)
		got := CurrentUser(c)
		if got == nil || got.Username != "alice" {
			t.Errorf("CurrentUser = %v, want alice", got)
		}
	})
}
