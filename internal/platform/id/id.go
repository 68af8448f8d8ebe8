// Package id encodes UUIDv4 bytes as compact URL-safe identifiers.
//
// Identifiers are base32 (RFC 4648) with no padding: 26 characters,
// lowercase, safe for URLs and file paths.
package id

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// FromReader builds an identifier from 16 bytes of r with the version 4
// and RFC 4122 variant bits set.
func FromReader(r io.Reader) (string, error) {
	raw, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(raw[:])), nil
}

// decode returns the 16 bytes behind an identifier.
func decode(id string) ([]byte, error) {
	raw, err := encoding.DecodeString(strings.ToUpper(id))
	if err != nil {
		return nil, fmt.Errorf("decode id: %w", err)
	}
	if len(raw) != 16 {
		return nil, fmt.Errorf("decode id: got %d bytes, want 16", len(raw))
	}
	return raw, nil
}
