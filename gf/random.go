package gf

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// prngDomainLabel separates the Prng key derivation from any other SHAKE use
// a caller might key with the same seed bytes.
const prngDomainLabel = "gf-prng-v1"

// Rand returns a uniformly distributed element of [0, p) drawn from the
// system's cryptographically secure entropy source. Successive calls are
// never reproducible; use Prng for deterministic sequences.
func (f *PrimeField) Rand() (*big.Int, error) {
	v, err := f.uniform(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("gf: sampling secure random element: %w", err)
	}
	return v, nil
}

// Prng returns a deterministic pseudorandom sequence of length field elements
// derived from seed. The seed is expanded with SHAKE-256 into a key for a
// blake2b-XOF stream, and elements are rejection-sampled from that stream, so
// the same seed and length always reproduce the same sequence.
func (f *PrimeField) Prng(seed []byte, length int) ([]*big.Int, error) {
	if length < 0 {
		return nil, fmt.Errorf("gf: negative prng length %d", length)
	}
	key := make([]byte, 32)
	h := sha3.NewShake256()
	h.Write([]byte(prngDomainLabel))
	h.Write(seed)
	if _, err := h.Read(key); err != nil {
		return nil, fmt.Errorf("gf: expanding prng seed: %w", err)
	}
	stream, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("gf: keying prng stream: %w", err)
	}
	out := make([]*big.Int, length)
	for i := range out {
		v, err := f.uniform(stream)
		if err != nil {
			return nil, fmt.Errorf("gf: reading prng stream: %w", err)
		}
		out[i] = v
	}
	return out, nil
}

// PrngInt is Prng with an integer seed, entering the stream big-endian.
// The seed must be non-negative.
func (f *PrimeField) PrngInt(seed *big.Int, length int) ([]*big.Int, error) {
	if seed == nil || seed.Sign() < 0 {
		return nil, fmt.Errorf("gf: prng seed must be a non-negative integer")
	}
	return f.Prng(seed.Bytes(), length)
}

// uniform rejection-samples an element of [0, p) from fixed-width byte draws.
// The top byte is masked down to the modulus bit length, so each draw is
// accepted with probability > 1/2 and no modulo bias is introduced.
func (f *PrimeField) uniform(r io.Reader) (*big.Int, error) {
	bits := f.p.BitLen()
	buf := make([]byte, (bits+7)/8)
	mask := byte(0xff >> (uint(len(buf)*8) - uint(bits)))
	v := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(f.p) < 0 {
			return new(big.Int).Set(v), nil
		}
	}
}
