package jsencrypt

import (
	"crypto"
	_ "crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureFacade(t *testing.T) *JSEncrypt {
	t.Helper()
	e := New(Options{})
	require.NoError(t, e.SetKey(fixturePrivatePEM))
	return e
}

// cipherBlocks decodes a base64 ciphertext and returns how many
// modulus-sized blocks it holds.
func cipherBlocks(t *testing.T, e *JSEncrypt, ciphertext string) int {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	key, err := e.Key()
	require.NoError(t, err)
	require.Zero(t, len(raw)%key.Size(), "ciphertext must be whole blocks")
	return len(raw) / key.Size()
}

func TestEncryptDecryptSingleBlock(t *testing.T) {
	e := fixtureFacade(t)

	ciphertext, err := e.Encrypt([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 1, cipherBlocks(t, e, ciphertext))

	plaintext, err := e.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plaintext))
}

func TestEncryptDecryptMultiChunk(t *testing.T) {
	e := fixtureFacade(t)

	// 2048 ASCII characters against a 1024-bit key: capacity is
	// 128-11 = 117 bytes per block, so ceil(2048/117) = 18 blocks.
	input := strings.Repeat("abcdefgh", 256)
	require.Len(t, input, 2048)

	ciphertext, err := e.Encrypt([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, 18, cipherBlocks(t, e, ciphertext))

	plaintext, err := e.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, input, string(plaintext))
}

func TestEncryptDecryptEmpty(t *testing.T) {
	e := fixtureFacade(t)

	ciphertext, err := e.Encrypt(nil)
	require.NoError(t, err)
	assert.Empty(t, ciphertext)

	plaintext, err := e.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestEncryptDecryptBinary(t *testing.T) {
	e := fixtureFacade(t)

	input := make([]byte, 300)
	for i := range input {
		input[i] = byte(i)
	}

	ciphertext, err := e.Encrypt(input)
	require.NoError(t, err)

	plaintext, err := e.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, input, plaintext)
}

func TestSmallKeyScenario(t *testing.T) {
	e := New(Options{KeySize: 512, AutoGenerate: true})

	ciphertext, err := e.Encrypt([]byte("hello"))
	require.NoError(t, err)

	plaintext, err := e.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plaintext))
}

func TestChunkCapacityMatrix(t *testing.T) {
	// Chunk capacity must track the modulus size for every key size, not
	// a fixed constant.
	for _, bits := range []int{512, 768, 1024} {
		e := New(Options{KeySize: bits, AutoGenerate: true})

		key, err := e.Key()
		require.NoError(t, err)
		capacity := key.Size() - pkcs1Overhead

		// Three full blocks plus a remainder
		input := strings.Repeat("x", 3*capacity+5)
		ciphertext, err := e.Encrypt([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, 4, cipherBlocks(t, e, ciphertext), "key size %d", bits)

		plaintext, err := e.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, input, string(plaintext), "key size %d", bits)
	}
}

func TestEncryptWithPublicKeyOnly(t *testing.T) {
	private := fixtureFacade(t)
	pubPEM, err := private.PublicKeyPEM()
	require.NoError(t, err)

	public := New(Options{})
	require.NoError(t, public.SetKey(pubPEM))

	input := strings.Repeat("secret ", 50)
	ciphertext, err := public.Encrypt([]byte(input))
	require.NoError(t, err)

	// Only the private holder can read it back
	plaintext, err := private.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, input, string(plaintext))

	_, err = public.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestPrivateEncryptPublicDecrypt(t *testing.T) {
	private := fixtureFacade(t)
	pubPEM, err := private.PublicKeyPEM()
	require.NoError(t, err)

	public := New(Options{})
	require.NoError(t, public.SetKey(pubPEM))

	input := strings.Repeat("broadcast ", 40)
	ciphertext, err := private.EncryptWithPrivateKey([]byte(input))
	require.NoError(t, err)

	plaintext, err := public.DecryptWithPublicKey(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, input, string(plaintext))
}

func TestDecryptMalformed(t *testing.T) {
	e := fixtureFacade(t)

	_, err := e.Decrypt("not base64!!!")
	assert.ErrorIs(t, err, ErrMalformedInput)

	// Valid base64, but not a whole number of blocks
	_, err = e.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecryptGarbageBlock(t *testing.T) {
	e := fixtureFacade(t)
	key, err := e.Key()
	require.NoError(t, err)

	garbage := make([]byte, key.Size())
	for i := range garbage {
		garbage[i] = 0x5a
	}
	_, err = e.Decrypt(base64.StdEncoding.EncodeToString(garbage))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedInput, "padding failures are not input decode failures")
}

func TestSignVerify(t *testing.T) {
	e := fixtureFacade(t)
	message := []byte("attack at dawn")

	signature, err := e.Sign(message, crypto.SHA256)
	require.NoError(t, err)

	ok, err := e.Verify(message, signature, crypto.SHA256)
	require.NoError(t, err)
	assert.True(t, ok)

	// Tampered message: clean false, no error
	ok, err = e.Verify([]byte("attack at dusk"), signature, crypto.SHA256)
	require.NoError(t, err)
	assert.False(t, ok)

	// Tampered signature: clean false, no error
	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	raw[0] ^= 0xff
	ok, err = e.Verify(message, base64.StdEncoding.EncodeToString(raw), crypto.SHA256)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMalformedSignature(t *testing.T) {
	e := fixtureFacade(t)

	ok, err := e.Verify([]byte("message"), "not base64!!!", crypto.SHA256)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestVerifyWithDifferentKey(t *testing.T) {
	signer := fixtureFacade(t)
	signature, err := signer.Sign([]byte("message"), crypto.SHA256)
	require.NoError(t, err)

	other := New(Options{KeySize: 1024, AutoGenerate: true})
	ok, err := other.Verify([]byte("message"), signature, crypto.SHA256)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignVerifySHA1(t *testing.T) {
	e := fixtureFacade(t)
	message := []byte("legacy digest")

	signature, err := e.Sign(message, crypto.SHA1)
	require.NoError(t, err)

	ok, err := e.Verify(message, signature, crypto.SHA1)
	require.NoError(t, err)
	assert.True(t, ok)

	// A SHA-256 verification of a SHA-1 signature is a mismatch, not an
	// input failure.
	ok, err = e.Verify(message, signature, crypto.SHA256)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignatureMatchesDigest(t *testing.T) {
	e := fixtureFacade(t)
	message := []byte("digest check")

	signature, err := e.Sign(message, crypto.SHA256)
	require.NoError(t, err)

	// The signature must cover the SHA-256 digest of the message.
	digest := sha256.Sum256(message)
	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)

	key, err := e.Key()
	require.NoError(t, err)
	recovered, err := key.DecryptBlock(raw, false)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(recovered), string(digest[:])),
		"DigestInfo should end with the message digest")
}
