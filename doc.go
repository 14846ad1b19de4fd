// Package jsencrypt is an RSA facade for callers that work with PEM key
// material and want encryption, decryption, signing and verification
// without dealing with RSA block-size limits.
//
// # Key management
//
// A facade manages at most one key. Keys can be supplied as PEM (private
// or public, header and footer optional) or generated on demand:
//
//	e := jsencrypt.New(jsencrypt.Options{KeySize: 2048, AutoGenerate: true})
//
//	// First use generates the key
//	pem, err := e.PublicKeyPEM()
//
// Generation can also run without blocking the caller:
//
//	e.GenerateKeyAsync(func(key *rsakey.Key, err error) {
//	    // key is installed and ready for synchronous calls
//	})
//
// # Encryption
//
// Encrypt splits input into modulus-sized blocks, encrypts each one and
// returns the concatenated ciphertext as base64, so inputs of any length
// round-trip:
//
//	ciphertext, err := e.Encrypt([]byte("hello"))
//	plaintext, err := e.Decrypt(ciphertext)
//
// # Signing
//
//	signature, err := e.Sign(message, crypto.SHA256)
//	ok, err := e.Verify(message, signature, crypto.SHA256)
//
// Verify distinguishes a signature that does not match (false, nil) from
// input that could not be checked at all (false, non-nil error).
package jsencrypt
