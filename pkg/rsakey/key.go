package rsakey

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// DefaultExponentHex is the public exponent used when none is configured.
const DefaultExponentHex = "010001"

var (
	// ErrPrivateKeyRequired indicates an operation that needs the private
	// half of the key was called on a public-only key.
	ErrPrivateKeyRequired = errors.New("rsakey: operation requires a private key")

	// ErrMalformedKey indicates the key material could not be parsed as an
	// RSA key in any supported encoding.
	ErrMalformedKey = errors.New("rsakey: malformed key material")
)

// Key wraps an RSA key pair, or the public half alone. A public-only key
// supports encryption and signature verification; decryption, signing and
// private exports return ErrPrivateKeyRequired.
type Key struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey

	fingerprint string // lazy loaded; keys are never mutated after construction
}

// FromPrivate wraps an existing RSA private key.
func FromPrivate(pkey *rsa.PrivateKey) *Key {
	return &Key{private: pkey, public: &pkey.PublicKey}
}

// FromPublic wraps an existing RSA public key.
func FromPublic(pkey *rsa.PublicKey) *Key {
	return &Key{public: pkey}
}

// Parse builds a Key from PEM key material, private or public. The PEM
// header and footer are optional: a bare base64 body is accepted. Private
// keys may be PKCS#1 or PKCS#8, public keys PKIX or PKCS#1.
func Parse(material string) (*Key, error) {
	der, err := decodeMaterial(material)
	if err != nil {
		return nil, err
	}

	if pkey, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return FromPrivate(pkey), nil
	}

	if parsed, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		pkey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is not an RSA key", ErrMalformedKey)
		}
		return FromPrivate(pkey), nil
	}

	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		pkey, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is not an RSA key", ErrMalformedKey)
		}
		return FromPublic(pkey), nil
	}

	if pkey, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return FromPublic(pkey), nil
	}

	return nil, fmt.Errorf("%w: not a PKCS#1, PKCS#8 or PKIX RSA key", ErrMalformedKey)
}

// decodeMaterial extracts DER bytes from PEM material with or without the
// header/footer lines.
func decodeMaterial(material string) ([]byte, error) {
	if strings.Contains(material, "-----") {
		block, _ := pem.Decode([]byte(material))
		if block == nil {
			return nil, fmt.Errorf("%w: invalid PEM block", ErrMalformedKey)
		}
		return block.Bytes, nil
	}

	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, material)

	der, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 body: %v", ErrMalformedKey, err)
	}
	return der, nil
}

// Generate creates a new RSA key pair. bits is the modulus bit length and
// must be positive. exponentHex is the public exponent in hexadecimal; the
// empty string means DefaultExponentHex.
func Generate(bits int, exponentHex string) (*Key, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("rsakey: key size must be positive, got %d", bits)
	}

	e, err := parseExponent(exponentHex)
	if err != nil {
		return nil, err
	}

	if e == defaultExponent {
		pkey, err := rsa.GenerateKey(rand.Reader, bits)
		if err != nil {
			return nil, fmt.Errorf("rsakey: generate: %w", err)
		}
		return FromPrivate(pkey), nil
	}

	pkey, err := generateWithExponent(bits, e)
	if err != nil {
		return nil, fmt.Errorf("rsakey: generate with exponent %x: %w", e, err)
	}
	return FromPrivate(pkey), nil
}

// IsPrivate reports whether the key carries its private half.
func (k *Key) IsPrivate() bool {
	return k.private != nil
}

// Private returns the underlying RSA private key, or nil for a public-only
// key.
func (k *Key) Private() *rsa.PrivateKey {
	return k.private
}

// Public returns the underlying RSA public key.
func (k *Key) Public() *rsa.PublicKey {
	return k.public
}

// BitLength returns the modulus bit length.
func (k *Key) BitLength() int {
	return k.public.N.BitLen()
}

// Size returns the modulus size in bytes, which is also the size of every
// ciphertext and signature block produced by the key.
func (k *Key) Size() int {
	return k.public.Size()
}

// EncryptBlock encrypts a single block of at most Size()-11 bytes with
// PKCS#1 v1.5 padding. With usePrivate the block is encrypted with the
// private exponent (block type 1) so that holders of the public key can
// recover it.
func (k *Key) EncryptBlock(block []byte, usePrivate bool) ([]byte, error) {
	if !usePrivate {
		out, err := rsa.EncryptPKCS1v15(rand.Reader, k.public, block)
		if err != nil {
			return nil, fmt.Errorf("rsakey: encrypt block: %w", err)
		}
		return out, nil
	}

	if k.private == nil {
		return nil, ErrPrivateKeyRequired
	}
	out, err := encryptWithPrivate(k.private, block)
	if err != nil {
		return nil, fmt.Errorf("rsakey: encrypt block: %w", err)
	}
	return out, nil
}

// DecryptBlock decrypts a single Size()-byte ciphertext block. With
// usePrivate=false the block is decrypted with the public exponent,
// recovering data produced by EncryptBlock(..., usePrivate=true).
func (k *Key) DecryptBlock(block []byte, usePrivate bool) ([]byte, error) {
	if usePrivate {
		if k.private == nil {
			return nil, ErrPrivateKeyRequired
		}
		out, err := rsa.DecryptPKCS1v15(rand.Reader, k.private, block)
		if err != nil {
			return nil, fmt.Errorf("rsakey: decrypt block: %w", err)
		}
		return out, nil
	}

	out, err := decryptWithPublic(k.public, block)
	if err != nil {
		return nil, fmt.Errorf("rsakey: decrypt block: %w", err)
	}
	return out, nil
}

// Sign hashes message with hash and returns a PKCS#1 v1.5 signature.
func (k *Key) Sign(message []byte, hash crypto.Hash) ([]byte, error) {
	if k.private == nil {
		return nil, ErrPrivateKeyRequired
	}
	if !hash.Available() {
		return nil, fmt.Errorf("rsakey: hash %v is not linked into the binary", hash)
	}

	h := hash.New()
	h.Write(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, k.private, hash, h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("rsakey: sign: %w", err)
	}
	return signature, nil
}

// Verify checks a PKCS#1 v1.5 signature over message. A mismatch surfaces
// as rsa.ErrVerification.
func (k *Key) Verify(message, signature []byte, hash crypto.Hash) error {
	if !hash.Available() {
		return fmt.Errorf("rsakey: hash %v is not linked into the binary", hash)
	}

	h := hash.New()
	h.Write(message)
	return rsa.VerifyPKCS1v15(k.public, hash, h.Sum(nil), signature)
}

// PrivatePEM returns the private key as a PKCS#1 PEM block.
func (k *Key) PrivatePEM() (string, error) {
	if k.private == nil {
		return "", ErrPrivateKeyRequired
	}
	return string(pem.EncodeToMemory(
		&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(k.private),
		},
	)), nil
}

// PublicPEM returns the public key as a PKIX PEM block.
func (k *Key) PublicPEM() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(k.public)
	if err != nil {
		return "", fmt.Errorf("rsakey: marshal public key: %w", err)
	}
	return string(pem.EncodeToMemory(
		&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: der,
		},
	)), nil
}

// PrivateB64 returns the base64 PKCS#1 DER of the private key, without PEM
// header, footer or line wrapping.
func (k *Key) PrivateB64() (string, error) {
	if k.private == nil {
		return "", ErrPrivateKeyRequired
	}
	return base64.StdEncoding.EncodeToString(x509.MarshalPKCS1PrivateKey(k.private)), nil
}

// PublicB64 returns the base64 PKIX DER of the public key, without PEM
// header, footer or line wrapping.
func (k *Key) PublicB64() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(k.public)
	if err != nil {
		return "", fmt.Errorf("rsakey: marshal public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// Fingerprint returns the hex SHA-256 digest of the PKIX public key DER.
func (k *Key) Fingerprint() string {
	if len(k.fingerprint) > 0 {
		return k.fingerprint
	}

	der, err := x509.MarshalPKIXPublicKey(k.public)
	if err != nil {
		return ""
	}

	k.fingerprint = hex.EncodeToString(sha256Digest(der))
	return k.fingerprint
}

func sha256Digest(value []byte) []byte {
	hash := sha256.New()
	hash.Write(value)
	return hash.Sum(nil)
}
