// Package random provides entropy seeds for engines that are not given one.
//
// It reads crypto/rand so unseeded engines start from unpredictable state,
// while the returned value can still be logged and replayed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	return SeedFrom(crand.Reader)
}

// SeedFrom reads an 8-byte little-endian seed from r.
func SeedFrom(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
