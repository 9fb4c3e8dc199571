package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// makeToken builds an unsigned three-part token with the given claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshaling claims: %v", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(payloadJSON)
	return header + "." + payload + ".c2ln"
}

func issuer(t *testing.T, token string, hasPermission bool, wantPermissionIdx int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/issue-jwt" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]int
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req["permissionIdx"] != wantPermissionIdx {
			t.Errorf("permissionIdx = %d, want %d", req["permissionIdx"], wantPermissionIdx)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":         token,
			"hasPermission": hasPermission,
		})
	}))
}

func TestRefresh(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := makeToken(t, map[string]any{
		"exp":           exp.Unix(),
		"userIdx":       12,
		"username":      "hyeon",
		"permissionIdx": 7,
	})
	srv := issuer(t, token, true, 7)
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	state, err := src.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !state.LoggedIn() {
		t.Fatal("expected logged-in state")
	}
	if !state.HasPermission {
		t.Error("expected permission")
	}
	if state.Payload.Username != "hyeon" || state.Payload.UserIdx != 12 {
		t.Errorf("payload = %+v", state.Payload)
	}
	if state.ValidUntil == nil || state.ValidUntil.Unix() != exp.Unix() {
		t.Errorf("ValidUntil = %v, want %v", state.ValidUntil, exp)
	}
}

func TestRefresh_CachesUntilWindow(t *testing.T) {
	calls := 0
	token := makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "hasPermission": false})
	}))
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	for i := 0; i < 3; i++ {
		if _, err := src.Refresh(context.Background()); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("identity service called %d times, want 1", calls)
	}
}

func TestRefresh_ExpiringSoonForcesRefresh(t *testing.T) {
	calls := 0
	token := makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "hasPermission": false})
	}))
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	if _, err := src.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	// Pretend the token expires in 10 seconds; within the 30s window.
	soon := time.Now().Add(10 * time.Second)
	src.state.ValidUntil = &soon

	if _, err := src.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if calls != 2 {
		t.Errorf("identity service called %d times, want 2", calls)
	}
}

func TestRefresh_NoExpiryNeverRefreshes(t *testing.T) {
	calls := 0
	token := makeToken(t, map[string]any{"username": "eternal"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "hasPermission": true})
	}))
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	state, err := src.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.ValidUntil != nil {
		t.Errorf("ValidUntil = %v, want nil", state.ValidUntil)
	}

	if _, err := src.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if calls != 1 {
		t.Errorf("identity service called %d times, want 1", calls)
	}
}

func TestRefresh_MalformedTokenIsLoggedOut(t *testing.T) {
	srv := issuer(t, "not-a-jwt", true, 7)
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	state, err := src.Refresh(context.Background())
	if err != nil {
		t.Fatalf("decode failure must not surface an error, got %v", err)
	}
	if state.LoggedIn() {
		t.Error("malformed token should force logged-out state")
	}
}

func TestRefresh_IdentityRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewSource(srv.URL, 7, time.Second)
	state, err := src.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.LoggedIn() {
		t.Error("rejection should force logged-out state")
	}
}
