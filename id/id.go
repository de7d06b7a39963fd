package id

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/xid"
)

const (
	RoomCodeLength   = 6
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func Generate() string {
	return xid.New().String()
}

func Valid(s string) bool {
	id, err := xid.FromString(s)
	if err != nil {
		return false
	}
	return !id.IsNil() && !id.IsZero()
}

// RoomCode returns a random six character code drawn from A-Z and 0-9.
// It does not check for collisions.
func RoomCode() (string, error) {
	return gonanoid.Generate(roomCodeAlphabet, RoomCodeLength)
}

// NormalizeRoomCode upper-cases user typed codes so "abc123" finds "ABC123".
func NormalizeRoomCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func ValidRoomCode(s string) bool {
	if len(s) != RoomCodeLength {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(roomCodeAlphabet, r) {
			return false
		}
	}
	return true
}
