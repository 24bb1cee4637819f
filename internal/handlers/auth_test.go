package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newJSONContext(t *testing.T, url, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

// 这些请求都应该在碰到数据库之前被拒绝，超长字段报 400 而不是 503
func TestRegisterValidation(t *testing.T) {
	longUsername := strings.Repeat("a", 151)
	longEmail := strings.Repeat("a", 250) + "@example.com"

	cases := []struct {
		name string
		body string
	}{
		{"invalid body", `not json`},
		{"missing username", `{"email":"a@example.com","password":"secret1","password_confirm":"secret1"}`},
		{"blank username", `{"username":"   ","email":"a@example.com","password":"secret1","password_confirm":"secret1"}`},
		{"oversized username", fmt.Sprintf(`{"username":%q,"email":"a@example.com","password":"secret1","password_confirm":"secret1"}`, longUsername)},
		{"missing email", `{"username":"alice","password":"secret1","password_confirm":"secret1"}`},
		{"email without at sign", `{"username":"alice","email":"not-an-email","password":"secret1","password_confirm":"secret1"}`},
		{"oversized email", fmt.Sprintf(`{"username":"alice","email":%q,"password":"secret1","password_confirm":"secret1"}`, longEmail)},
		{"short password", `{"username":"alice","email":"a@example.com","password":"abc","password_confirm":"abc"}`},
		{"password mismatch", `{"username":"alice","email":"a@example.com","password":"secret1","password_confirm":"secret2"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newJSONContext(t, "/api/v1/users", tc.body)
			NewAuthHandler().Register(c)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
