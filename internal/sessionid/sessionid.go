// Package sessionid names game sessions for logs and reports. IDs are UUIDv7
// values written as 26 characters of Crockford base32, so they sort by
// creation time.
package sessionid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters in an ID.
const Length = 26

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh session ID.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Encode(id)
}

// Encode writes the 128 bits of id as base32, five bits per character from
// the most significant end. The last character carries the final three bits.
func Encode(id uuid.UUID) string {
	out := make([]byte, Length)
	for i := range out {
		bit := i * 5
		byteIndex, shift := bit/8, bit%8

		var v byte
		if shift <= 3 {
			v = id[byteIndex] >> (3 - shift)
		} else {
			v = id[byteIndex] << (shift - 3)
			if byteIndex+1 < len(id) {
				v |= id[byteIndex+1] >> (11 - shift)
			}
		}
		out[i] = alphabet[v&0x1f]
	}
	return string(out)
}

// Validate checks that s looks like an ID produced by New.
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", s[0])
	}
	for i, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}
