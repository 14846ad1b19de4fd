package jsencrypt

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/lei40251/jsencrypt/pkg/rsakey"
)

// Version identifies the library for diagnostics.
const Version = "3.2.1"

// DefaultKeySize is the modulus bit length used when Options.KeySize is
// unset.
const DefaultKeySize = 1024

// ErrKeyAbsent indicates no key has been set and on-demand generation is
// not enabled.
var ErrKeyAbsent = errors.New("jsencrypt: no key available")

// Options configures a JSEncrypt instance. The zero value generates
// 1024-bit keys with exponent 0x10001, does not log, and requires callers
// to set or generate a key explicitly.
type Options struct {
	// KeySize is the modulus bit length for generated keys. Zero means
	// DefaultKeySize.
	KeySize int

	// ExponentHex is the public exponent for generated keys, in
	// hexadecimal. Empty means rsakey.DefaultExponentHex.
	ExponentHex string

	// AutoGenerate makes Key() and the exporter methods generate a key on
	// demand when none is present.
	AutoGenerate bool

	// Logger receives non-fatal warnings such as key replacement. Nil
	// disables logging.
	Logger *slog.Logger
}

// JSEncrypt is an RSA facade over a single managed key: it parses or
// generates the key and performs encryption, decryption, signing and
// verification without exposing RSA block-size limits to the caller.
//
// Key state transitions are guarded by a mutex, so the asynchronous
// generation path is safe to combine with concurrent operations. The chunk
// loops of Encrypt and Decrypt always run on the calling goroutine.
type JSEncrypt struct {
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	key     *rsakey.Key
	state   KeyState
	pending chan struct{} // non-nil while a generation is in flight
}

// New creates a facade with the given options. Options are fixed for the
// lifetime of the instance.
func New(opts Options) *JSEncrypt {
	if opts.KeySize == 0 {
		opts.KeySize = DefaultKeySize
	}
	if opts.ExponentHex == "" {
		opts.ExponentHex = rsakey.DefaultExponentHex
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &JSEncrypt{opts: opts, logger: logger}
}

// SetKey replaces the managed key with one parsed from PEM material,
// private or public, with or without header and footer lines. Parse
// errors are returned unchanged from the rsakey package. Replacing an
// existing key emits a warning on the configured logger.
func (e *JSEncrypt) SetKey(material string) error {
	key, err := rsakey.Parse(material)
	if err != nil {
		return err
	}

	e.mu.Lock()
	old := e.key
	e.key = key
	e.state = KeyStateReady
	e.pending = nil // supersede any in-flight generation
	e.mu.Unlock()

	if old != nil {
		e.logger.Warn("replacing existing key",
			"old_fingerprint", old.Fingerprint(),
			"new_fingerprint", key.Fingerprint())
	}
	return nil
}

// SetPrivateKey is an alias for SetKey.
func (e *JSEncrypt) SetPrivateKey(material string) error {
	return e.SetKey(material)
}

// SetPublicKey is an alias for SetKey.
func (e *JSEncrypt) SetPublicKey(material string) error {
	return e.SetKey(material)
}

// Key returns the managed key, blocking until any in-flight generation
// completes. When no key is present it generates one with the configured
// size and exponent if AutoGenerate is set, and returns ErrKeyAbsent
// otherwise.
func (e *JSEncrypt) Key() (*rsakey.Key, error) {
	e.mu.Lock()
	for e.state == KeyStateGenerating {
		pending := e.pending
		e.mu.Unlock()
		<-pending
		e.mu.Lock()
	}

	if e.key != nil {
		key := e.key
		e.mu.Unlock()
		return key, nil
	}

	if !e.opts.AutoGenerate {
		e.mu.Unlock()
		return nil, ErrKeyAbsent
	}
	e.mu.Unlock()

	return e.GenerateKey()
}

// GenerateKey synchronously generates a new key with the configured size
// and exponent and installs it, replacing any existing key.
func (e *JSEncrypt) GenerateKey() (*rsakey.Key, error) {
	pending := e.beginGenerate()
	key, err := rsakey.Generate(e.opts.KeySize, e.opts.ExponentHex)
	e.finishGenerate(pending, key, err)
	return key, err
}

// GenerateKeyAsync generates a new key without blocking the caller. The
// done callback is invoked exactly once with the outcome. While generation
// is in flight the facade reports KeyStateGenerating and Key() blocks
// until completion.
func (e *JSEncrypt) GenerateKeyAsync(done func(*rsakey.Key, error)) {
	pending := e.beginGenerate()
	go func() {
		key, err := rsakey.Generate(e.opts.KeySize, e.opts.ExponentHex)
		e.finishGenerate(pending, key, err)
		if done != nil {
			done(key, err)
		}
	}()
}

// State reports the current key lifecycle state.
func (e *JSEncrypt) State() KeyState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *JSEncrypt) beginGenerate() chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := make(chan struct{})
	e.state = KeyStateGenerating
	e.pending = pending
	return pending
}

func (e *JSEncrypt) finishGenerate(pending chan struct{}, key *rsakey.Key, err error) {
	var old *rsakey.Key

	e.mu.Lock()
	if e.pending == pending {
		e.pending = nil
		switch {
		case err == nil:
			old = e.key
			e.key = key
			e.state = KeyStateReady
		case e.key != nil:
			e.state = KeyStateReady
		default:
			e.state = KeyStateAbsent
		}
	}
	e.mu.Unlock()
	close(pending)

	if old != nil {
		e.logger.Warn("replacing existing key",
			"old_fingerprint", old.Fingerprint(),
			"new_fingerprint", key.Fingerprint())
	}
}

// PrivateKeyPEM returns the private key as a PKCS#1 PEM block with header
// and footer. Like all exporters it acquires the key via Key() first, so
// the first call on a fresh AutoGenerate facade pays generation latency.
func (e *JSEncrypt) PrivateKeyPEM() (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}
	return key.PrivatePEM()
}

// PublicKeyPEM returns the public key as a PKIX PEM block with header and
// footer.
func (e *JSEncrypt) PublicKeyPEM() (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}
	return key.PublicPEM()
}

// PrivateKeyB64 returns the private key DER payload as unwrapped base64.
func (e *JSEncrypt) PrivateKeyB64() (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}
	return key.PrivateB64()
}

// PublicKeyB64 returns the public key DER payload as unwrapped base64.
func (e *JSEncrypt) PublicKeyB64() (string, error) {
	key, err := e.Key()
	if err != nil {
		return "", err
	}
	return key.PublicB64()
}
