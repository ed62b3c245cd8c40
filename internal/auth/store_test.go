package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ytup/internal/faults"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testCredential() *Credential {
	return NewCredential(&oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}, RequiredScopes)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "tokens", "token.json"))

	require.NoError(t, store.Save(testCredential()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, CredentialVersion, loaded.Version)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.True(t, loaded.Expiry.Equal(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)))
	assert.ElementsMatch(t, RequiredScopes, loaded.Scopes)
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	cred, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, cred)
}

func TestStore_LoadCorruptFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0600))

	cred, err := NewStore(path).Load()
	assert.Nil(t, cred)
	require.Error(t, err)
	assert.Equal(t, faults.CredentialLoad, faults.CategoryOf(err))
}

func TestStore_LoadUnknownVersionFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0600))

	cred, err := NewStore(path).Load()
	assert.Nil(t, cred)
	require.Error(t, err)
	assert.Equal(t, faults.CredentialLoad, faults.CategoryOf(err))
}

func TestStore_SaveFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, NewStore(path).Save(testCredential()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCredential_HasScopes(t *testing.T) {
	tests := []struct {
		name     string
		granted  []string
		required []string
		want     bool
	}{
		{
			name:     "exact match",
			granted:  []string{"scope-a", "scope-b"},
			required: []string{"scope-a", "scope-b"},
			want:     true,
		},
		{
			name:     "order independent",
			granted:  []string{"scope-b", "scope-a"},
			required: []string{"scope-a", "scope-b"},
			want:     true,
		},
		{
			name:     "proper subset rejected",
			granted:  []string{"scope-a"},
			required: []string{"scope-a", "scope-b"},
			want:     false,
		},
		{
			name:     "proper superset rejected",
			granted:  []string{"scope-a", "scope-b", "scope-c"},
			required: []string{"scope-a", "scope-b"},
			want:     false,
		},
		{
			name:     "disjoint rejected",
			granted:  []string{"scope-x"},
			required: []string{"scope-a"},
			want:     false,
		},
		{
			name:     "duplicates collapse to set",
			granted:  []string{"scope-a", "scope-a", "scope-b"},
			required: []string{"scope-b", "scope-a"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := &Credential{Scopes: tt.granted}
			assert.Equal(t, tt.want, cred.HasScopes(tt.required))
		})
	}
}

func TestCredential_TokenRoundTrip(t *testing.T) {
	cred := testCredential()
	tok := cred.Token()

	assert.Equal(t, "access", tok.AccessToken)
	assert.Equal(t, "refresh", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.True(t, tok.Expiry.Equal(cred.Expiry))
}
