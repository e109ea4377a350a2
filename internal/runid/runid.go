// Package runid generates sortable identifiers for batch runs.
package runid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded id
const Length = 26

// New returns a UUIDv7 encoded as 26 lowercase base32 characters. Ids sort
// by creation time.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the system random source does
		id = uuid.New()
	}
	return Encode(id)
}

// Encode renders a UUID as 130 bits (two leading zero bits) in base32
func Encode(id uuid.UUID) string {
	bit := func(k int) byte {
		if k < 0 {
			return 0
		}
		return (id[k/8] >> (7 - k%8)) & 1
	}

	out := make([]byte, Length)
	for i := range out {
		var v byte
		for j := 0; j < 5; j++ {
			v = v<<1 | bit(i*5+j-2)
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks id is 26 base32 characters that fit in 128 bits
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
