// Package hash computes xxHash64 fingerprints used to identify frequency tables.
package hash

import "github.com/cespare/xxhash/v2"

// Digest accumulates a fingerprint incrementally, avoiding a serialized copy of the input.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// WriteByte adds a single byte to the fingerprint.
func (d Digest) WriteByte(b byte) error {
	_, err := d.d.Write([]byte{b})
	return err
}

// WriteUint64 adds v in little-endian order to the fingerprint.
func (d Digest) WriteUint64(v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = d.d.Write(buf[:])
}

// Sum64 returns the current fingerprint.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
