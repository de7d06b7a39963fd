package id

import "testing"

func TestRoomCode(t *testing.T) {
	seen := map[string]struct{}{}
	for range 500 {
		code, err := RoomCode()
		if err != nil {
			t.Fatal(err)
		}

		if !ValidRoomCode(code) {
			t.Fatalf("invalid room code %q", code)
		}

		seen[code] = struct{}{}
	}

	// 36^6 possible codes; a handful of repeats in 500 draws would point at a broken alphabet.
	if len(seen) < 490 {
		t.Errorf("too many repeated codes: got %d distinct out of 500", len(seen))
	}
}

func TestValidRoomCode(t *testing.T) {
	tt := []struct {
		code string
		want bool
	}{
		{"ABC123", true},
		{"000000", true},
		{"ZZZZZZ", true},
		{"abc123", false},
		{"ABC12", false},
		{"ABC1234", false},
		{"ABC-12", false},
		{"", false},
		{"ÁBC123", false},
	}
	for _, tc := range tt {
		t.Run(tc.code, func(t *testing.T) {
			if got := ValidRoomCode(tc.code); got != tc.want {
				t.Errorf("ValidRoomCode(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	if got, want := NormalizeRoomCode(" abc123 "), "ABC123"; got != want {
		t.Errorf("NormalizeRoomCode() = %q, want %q", got, want)
	}
}

func TestValid(t *testing.T) {
	if !Valid(Generate()) {
		t.Error("generated id should be valid")
	}

	if Valid("nope") {
		t.Error("garbage should not be valid")
	}
}
