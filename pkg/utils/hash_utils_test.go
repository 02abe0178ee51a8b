package utils

import "testing"

func TestShortHash(t *testing.T) {
	if got := ShortHash(""); got != "" {
		t.Errorf("ShortHash(\"\") = %q, want empty", got)
	}
	a, b := ShortHash("haloscan-key"), ShortHash("haloscan-key")
	if len(a) != 8 || a != b {
		t.Errorf("ShortHash not stable 8-char digest: %q %q", a, b)
	}
	if ShortHash("other") == a {
		t.Errorf("distinct inputs share a digest")
	}
}
