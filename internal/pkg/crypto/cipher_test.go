//go:build unit

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestAESGCMCipher_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := NewAESGCMCipher(testKeyHex)
	require.NoError(t, err)

	ct, err := c.Encrypt("v1.refresh-token-value")
	require.NoError(t, err)
	require.NotEqual(t, "v1.refresh-token-value", ct)

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, "v1.refresh-token-value", pt)
}

func TestAESGCMCipher_EncryptIsNonDeterministic(t *testing.T) {
	t.Parallel()

	c, err := NewAESGCMCipher(testKeyHex)
	require.NoError(t, err)

	a, err := c.Encrypt("token")
	require.NoError(t, err)
	b, err := c.Encrypt("token")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "nonce must differ per call")
}

func TestAESGCMCipher_BadKey(t *testing.T) {
	t.Parallel()

	_, err := NewAESGCMCipher("not-hex")
	require.Error(t, err)

	_, err = NewAESGCMCipher("abcd")
	require.Error(t, err)
}

func TestAESGCMCipher_TamperedCiphertext(t *testing.T) {
	t.Parallel()

	c, err := NewAESGCMCipher(testKeyHex)
	require.NoError(t, err)

	ct, err := c.Encrypt("token")
	require.NoError(t, err)

	tampered := strings.Replace(ct, ct[4:5], "A", 1)
	if tampered == ct {
		tampered = strings.Replace(ct, ct[4:5], "B", 1)
	}
	_, err = c.Decrypt(tampered)
	require.Error(t, err)
}
