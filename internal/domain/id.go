package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// canonicalIDLength is the length of the 8-4-4-4-12 textual form.
const canonicalIDLength = 36

// errInvalidIDFormat matches both ErrInvalidID and ErrInvalidFormat.
var errInvalidIDFormat = fmt.Errorf("%w: %w", ErrInvalidID, ErrInvalidFormat)

// ParseID parses text as an identifier in canonical hyphenated form.
// Hex digits may be upper or lower case. Braced, URN and unhyphenated
// spellings are rejected even though uuid.Parse accepts them.
func ParseID(text string) (uuid.UUID, error) {
	if len(text) != canonicalIDLength {
		return uuid.Nil, errInvalidIDFormat
	}
	for i := 0; i < len(text); i++ {
		switch i {
		case 8, 13, 18, 23:
			if text[i] != '-' {
				return uuid.Nil, errInvalidIDFormat
			}
		default:
			if !isHex(text[i]) {
				return uuid.Nil, errInvalidIDFormat
			}
		}
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, errInvalidIDFormat
	}
	return id, nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
