package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircnc/middleware"
	"aircnc/services/auth"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T, tokens auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/rooms/:email",
		middleware.RequireAuth(tokens),
		middleware.RequireOwner("email"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"identity": c.GetString(middleware.IdentityKey)})
		},
	)
	return r
}

func decodeError(t *testing.T, body []byte) (bool, string) {
	t.Helper()
	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error, resp.Message
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewJWTTokenService("test-secret")
	r := newGuardedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/host@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if isErr, msg := decodeError(t, w.Body.Bytes()); !isErr || msg != "unauthorized access" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewJWTTokenService("test-secret")
	r := newGuardedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/host@x.com", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if isErr, msg := decodeError(t, w.Body.Bytes()); !isErr || msg != "unauthorized access" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRequireOwner_ExactMatch(t *testing.T) {
	tokens := auth.NewJWTTokenService("test-secret")
	r := newGuardedRouter(t, tokens)

	token, err := tokens.Issue("host@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/host@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireOwner_Mismatch(t *testing.T) {
	tokens := auth.NewJWTTokenService("test-secret")
	r := newGuardedRouter(t, tokens)

	// Case differences are a mismatch: the comparison is exact.
	for _, identity := range []string{"other@x.com", "Host@x.com", "host@x.com "} {
		token, err := tokens.Issue(identity)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rooms/host@x.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("identity %q: expected 403, got %d", identity, w.Code)
		}
		if isErr, msg := decodeError(t, w.Body.Bytes()); !isErr || msg != "Forbidden access" {
			t.Fatalf("identity %q: unexpected body: %s", identity, w.Body.String())
		}
	}
}
