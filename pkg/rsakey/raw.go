package rsakey

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"
	"strconv"
)

const defaultExponent = 65537

// parseExponent resolves a hexadecimal public exponent string. The empty
// string resolves to the default 0x10001.
func parseExponent(exponentHex string) (int, error) {
	if exponentHex == "" {
		exponentHex = DefaultExponentHex
	}

	e, err := strconv.ParseUint(exponentHex, 16, 62)
	if err != nil {
		return 0, fmt.Errorf("rsakey: invalid public exponent %q: %w", exponentHex, err)
	}
	if e < 3 || e%2 == 0 {
		return 0, fmt.Errorf("rsakey: public exponent %#x must be an odd number >= 3", e)
	}
	return int(e), nil
}

// generateWithExponent builds a two-prime RSA key for exponents the
// standard library cannot generate directly. The resulting key passes
// (*rsa.PrivateKey).Validate.
func generateWithExponent(bits, exponent int) (*rsa.PrivateKey, error) {
	if bits < 64 {
		return nil, fmt.Errorf("key size %d too small", bits)
	}

	e := big.NewInt(int64(exponent))
	one := big.NewInt(1)

	for {
		p, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := rand.Prime(rand.Reader, bits-bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}

		pminus1 := new(big.Int).Sub(p, one)
		qminus1 := new(big.Int).Sub(q, one)
		totient := new(big.Int).Mul(pminus1, qminus1)

		// e must be invertible mod phi(n)
		d := new(big.Int)
		if d.ModInverse(e, totient) == nil {
			continue
		}

		key := &rsa.PrivateKey{
			PublicKey: rsa.PublicKey{N: n, E: exponent},
			D:         d,
			Primes:    []*big.Int{p, q},
		}
		key.Precompute()
		if err := key.Validate(); err != nil {
			continue
		}
		return key, nil
	}
}

// encryptWithPrivate applies PKCS#1 v1.5 block type 1 padding and raises
// the padded block to the private exponent. The output is recoverable with
// the public key alone.
func encryptWithPrivate(priv *rsa.PrivateKey, block []byte) ([]byte, error) {
	k := priv.Size()
	if len(block) > k-11 {
		return nil, rsa.ErrMessageTooLong
	}

	// EM = 0x00 || 0x01 || PS (0xff...) || 0x00 || block
	em := make([]byte, k)
	em[1] = 1
	ps := em[2 : k-len(block)-1]
	for i := range ps {
		ps[i] = 0xff
	}
	copy(em[k-len(block):], block)

	c := new(big.Int).Exp(new(big.Int).SetBytes(em), priv.D, priv.N)
	return c.FillBytes(make([]byte, k)), nil
}

// decryptWithPublic raises a ciphertext block to the public exponent and
// strips PKCS#1 v1.5 padding. Both block types are accepted so material
// produced by either encryption direction round-trips.
func decryptWithPublic(pub *rsa.PublicKey, block []byte) ([]byte, error) {
	k := pub.Size()
	if len(block) != k {
		return nil, rsa.ErrDecryption
	}

	c := new(big.Int).SetBytes(block)
	if c.Cmp(pub.N) >= 0 {
		return nil, rsa.ErrDecryption
	}

	m := new(big.Int).Exp(c, big.NewInt(int64(pub.E)), pub.N)
	em := m.FillBytes(make([]byte, k))

	if em[0] != 0 || (em[1] != 1 && em[1] != 2) {
		return nil, rsa.ErrDecryption
	}

	sep := bytes.IndexByte(em[2:], 0)
	if sep < 8 { // at least eight bytes of padding
		return nil, rsa.ErrDecryption
	}
	return em[2+sep+1:], nil
}
