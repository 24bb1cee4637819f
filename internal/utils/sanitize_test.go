package utils

import "testing"

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"strips tags", "<script>alert(1)</script>hi", "hi"},
		{"keeps inner text", "<b>bold</b> move", "bold move"},
		{"unescapes entities", "fish &amp; chips", "fish & chips"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only tags", "<img src=x>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeText(tc.input); got != tc.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
