package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// CredentialVersion is the current on-disk artifact version.
const CredentialVersion = 1

// Credential is the stored token artifact: a versioned, inspectable JSON
// document instead of an opaque blob, so the file stays portable across
// tooling and can be examined (or deleted) by the operator.
type Credential struct {
	Version      int       `json:"version"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
	Scopes       []string  `json:"scopes"`
}

// NewCredential captures an OAuth token together with the scopes it was
// granted for.
func NewCredential(tok *oauth2.Token, scopes []string) *Credential {
	return &Credential{
		Version:      CredentialVersion,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Scopes:       append([]string(nil), scopes...),
	}
}

// Token converts the credential back into an oauth2 token.
func (c *Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
		TokenType:    "Bearer",
	}
}

// HasScopes reports whether the granted scope set equals required exactly.
// Order does not matter; a proper subset or superset does not qualify, and
// forces re-authentication.
func (c *Credential) HasScopes(required []string) bool {
	granted := scopeSet(c.Scopes)
	want := scopeSet(required)
	if len(granted) != len(want) {
		return false
	}
	for s := range want {
		if _, ok := granted[s]; !ok {
			return false
		}
	}
	return true
}

func scopeSet(scopes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		set[s] = struct{}{}
	}
	return set
}
