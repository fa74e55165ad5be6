package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	uid := uuid.New()
	raw, err := IssueToken(testSecret, uid, "Jordan Lee", RoleStudent, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(testSecret, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != uid.String() {
		t.Errorf("expected subject %s, got %s", uid, claims.Subject)
	}
	if claims.Role != RoleStudent {
		t.Errorf("expected role student, got %s", claims.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw, _ := IssueToken(testSecret, uuid.New(), "x", RoleStudent, time.Hour)
	if _, err := ParseToken("other-secret", raw); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	raw, _ := IssueToken(testSecret, uuid.New(), "x", RoleStudent, -time.Minute)
	if _, err := ParseToken(testSecret, raw); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	uid := uuid.New()
	raw, _ := IssueToken(testSecret, uid, "Jordan Lee", RoleInstructor, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		if UserIDFromContext(ctx) != uid {
			t.Error("expected user id in context")
		}
		if RoleFromContext(ctx) != RoleInstructor {
			t.Error("expected role in context")
		}
		if !IsInstructor(ctx) {
			t.Error("expected IsInstructor true")
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := JWTMiddleware(testSecret)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return nil }
	err := JWTMiddleware(testSecret)(handler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role    string
		allowed []string
		wantOK  bool
	}{
		{RoleStudent, []string{RoleInstructor}, false},
		{RoleInstructor, []string{RoleInstructor}, true},
		{RoleAdmin, []string{RoleInstructor}, true},
		{RoleStudent, []string{RoleStudent, RoleInstructor}, true},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), UserRoleKey, tc.role)
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
		err := RequireRole(tc.allowed...)(handler)(c)

		if tc.wantOK && err != nil {
			t.Errorf("role %s with %v: unexpected error %v", tc.role, tc.allowed, err)
		}
		if !tc.wantOK {
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusForbidden {
				t.Errorf("role %s with %v: expected 403, got %v", tc.role, tc.allowed, err)
			}
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("instructor123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPassword(hash, "instructor123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
