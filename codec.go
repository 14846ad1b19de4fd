package jsencrypt

import (
	"crypto"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
)

// pkcs1Overhead is the minimum PKCS#1 v1.5 padding per encrypted block.
const pkcs1Overhead = 11

// ErrMalformedInput indicates ciphertext or signature input that could not
// be decoded before reaching the RSA primitives.
var ErrMalformedInput = errors.New("jsencrypt: malformed input")

// Encrypt encrypts data of any length with the public key. Data is split
// in order into blocks sized to the key's modulus, each block is encrypted
// independently, and the concatenated ciphertext blocks are returned as a
// single base64 string.
func (e *JSEncrypt) Encrypt(data []byte) (string, error) {
	return e.encrypt(data, false)
}

// EncryptWithPrivateKey is Encrypt with the private exponent, producing
// ciphertext that DecryptWithPublicKey recovers.
func (e *JSEncrypt) EncryptWithPrivateKey(data []byte) (string, error) {
	return e.encrypt(data, true)
}

// Decrypt reverses Encrypt: it base64-decodes the input, decrypts each
// modulus-sized block with the private key, and concatenates the recovered
// plaintext in block order.
func (e *JSEncrypt) Decrypt(ciphertextB64 string) ([]byte, error) {
	return e.decrypt(ciphertextB64, true)
}

// DecryptWithPublicKey reverses EncryptWithPrivateKey using only the
// public half of the key.
func (e *JSEncrypt) DecryptWithPublicKey(ciphertextB64 string) ([]byte, error) {
	return e.decrypt(ciphertextB64, false)
}

func (e *JSEncrypt) encrypt(data []byte, usePrivate bool) (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}

	capacity := key.Size() - pkcs1Overhead
	out := make([]byte, 0, chunkCount(len(data), capacity)*key.Size())

	for len(data) > 0 {
		n := min(capacity, len(data))
		block, err := key.EncryptBlock(data[:n], usePrivate)
		if err != nil {
			return "", err
		}
		out = append(out, block...)
		data = data[n:]
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

func (e *JSEncrypt) decrypt(ciphertextB64 string, usePrivate bool) ([]byte, error) {
	key, err := e.Key()
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	blockSize := key.Size()
	if len(raw)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the %d-byte block size",
			ErrMalformedInput, len(raw), blockSize)
	}

	out := make([]byte, 0, len(raw))
	for offset := 0; offset < len(raw); offset += blockSize {
		plain, err := key.DecryptBlock(raw[offset:offset+blockSize], usePrivate)
		if err != nil {
			return nil, err
		}
		out = append(out, plain...)
	}
	return out, nil
}

// Sign hashes message with hash, signs the digest with the private key and
// returns the signature as base64. Signing never chunks: the signature
// covers the digest, not the raw message.
func (e *JSEncrypt) Sign(message []byte, hash crypto.Hash) (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}

	signature, err := key.Sign(message, hash)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify checks a base64 signature over message. A well-formed signature
// that does not match returns (false, nil); inputs that cannot be checked
// at all, such as invalid base64 or a missing key, return a non-nil error.
func (e *JSEncrypt) Verify(message []byte, signatureB64 string, hash crypto.Hash) (bool, error) {
	key, err := e.Key()
	if err != nil {
		return false, err
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if err := key.Verify(message, signature, hash); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func chunkCount(length, capacity int) int {
	if length == 0 {
		return 0
	}
	return (length + capacity - 1) / capacity
}
