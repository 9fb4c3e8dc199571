// Package auth manages bearer tokens issued by the external identity service.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

// refreshWindow is how close to expiry a token may get before a refresh is
// forced.
const refreshWindow = 30 * time.Second

// Payload is the decoded middle segment of an issued token. The client
// never verifies the signature; verification is the backend's job.
type Payload struct {
	UserIdx       int    `json:"userIdx"`
	Username      string `json:"username"`
	PermissionIdx int    `json:"permissionIdx"`
}

// State is a snapshot of the token cache.
type State struct {
	Token         string
	HasPermission bool
	Payload       *Payload
	// ValidUntil is nil when the token carries no expiry and never expires.
	ValidUntil *time.Time
}

// LoggedIn reports whether a usable token is held.
func (s State) LoggedIn() bool {
	return s.Token != ""
}

// Source issues and caches tokens from the identity service. It replaces
// the usual global token singleton with an explicit object: callers ask
// for Refresh and always get the current state back.
type Source struct {
	endpoint      string
	permissionIdx int
	http          *http.Client
	now           func() time.Time

	mu    sync.Mutex
	state State
}

// NewSource creates a token source against {baseURL}/issue-jwt.
func NewSource(baseURL string, permissionIdx int, timeout time.Duration) *Source {
	return &Source{
		endpoint:      strings.TrimSuffix(baseURL, "/") + "/issue-jwt",
		permissionIdx: permissionIdx,
		http:          &http.Client{Timeout: timeout},
		now:           time.Now,
	}
}

// State returns the cached token state without refreshing.
func (s *Source) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh returns a valid token state, fetching a new token when the
// cached one is missing or expires within the refresh window. A token the
// identity service returns but whose payload cannot be decoded counts as
// logged out, not as an error.
func (s *Source) Refresh(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Token != "" {
		if s.state.ValidUntil == nil || s.state.ValidUntil.After(s.now().Add(refreshWindow)) {
			return s.state, nil
		}
	}

	body, err := json.Marshal(map[string]int{"permissionIdx": s.permissionIdx})
	if err != nil {
		return s.state, fmt.Errorf("marshaling issue request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return s.state, fmt.Errorf("building issue request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return s.state, fmt.Errorf("issuing token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Not logged in at the identity service. Degrade to logged out.
		s.state = State{}
		return s.state, nil
	}

	var issued struct {
		Token         string `json:"token"`
		HasPermission bool   `json:"hasPermission"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&issued); err != nil {
		return s.state, fmt.Errorf("decoding issue response: %w", err)
	}

	s.state = decodeState(issued.Token, issued.HasPermission)
	return s.state, nil
}

// decodeState builds a State from a raw token, treating malformed tokens
// as logged out.
func decodeState(token string, hasPermission bool) State {
	if token == "" {
		return State{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return State{}
	}

	payload := &Payload{}
	if v, ok := claims["userIdx"].(float64); ok {
		payload.UserIdx = int(v)
	}
	if v, ok := claims["username"].(string); ok {
		payload.Username = v
	}
	if v, ok := claims["permissionIdx"].(float64); ok {
		payload.PermissionIdx = int(v)
	}

	state := State{
		Token:         token,
		HasPermission: hasPermission,
		Payload:       payload,
	}
	if exp, ok := claims["exp"].(float64); ok {
		validUntil := time.Unix(int64(exp), 0)
		state.ValidUntil = &validUntil
	}
	return state
}
