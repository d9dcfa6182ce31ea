package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTrim(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"abcdef", 3, "abc…"},
		// "é" is two bytes; cutting at 2 would split it
		{"aébc", 2, "a…"},
		{"привет", 5, "пр…"},
		{"×", 0, "…"},
	}

	for _, c := range cases {
		got := Trim(c.in, c.max)
		if got != c.want {
			t.Errorf("Trim(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Trim(%q, %d) produced invalid UTF-8", c.in, c.max)
		}
	}
}
