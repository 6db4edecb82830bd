package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("0123456789abcdef"))
	box, err := NewSealedBox(key)
	require.NoError(t, err)

	sealed, err := box.Seal([]byte(`{"token":"abc"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "abc")

	plain, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc"}`, string(plain))
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("0123456789abcdef"))
	box, err := NewSealedBox(key)
	require.NoError(t, err)

	sealed, err := box.Seal([]byte("payload"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xFF

	_, err = box.Open(sealed)
	require.Error(t, err)
}

func TestOpen_TooShort(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("0123456789abcdef"))
	box, err := NewSealedBox(key)
	require.NoError(t, err)

	_, err = box.Open([]byte{0x01})
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewSealedBox_BadKeyLength(t *testing.T) {
	_, err := NewSealedBox([]byte("short"))
	require.Error(t, err)
}

func TestLoadOrCreateSecret_CreatesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.secret")

	key1, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	require.Len(t, key1, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key2, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func TestLoadOrCreateSecret_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.secret")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateSecret(path)
	require.Error(t, err)
}
