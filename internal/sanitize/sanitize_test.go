package sanitize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"hello_world", "hello_world"},
		{"hello-world", "helloworld"},
		{"hello world", "helloworld"},
		{"hello.world", "helloworld"},
		{"2fast", "_2fast"},
		{"42", "_42"},
		{"class", "class_"},
		{"function", "function_"},
		{"delete", "delete_"},
		{"undefined", "undefined_"},
		{"className", "className"},
		{"ключ", "ключ"},
		{"naïve", "naïve"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyStripThenReserve(t *testing.T) {
	// Stripping can land on a reserved word, which still gets the suffix.
	if got := Key("cla-ss"); got != "class_" {
		t.Errorf("Key(%q) = %q, want %q", "cla-ss", got, "class_")
	}
}

func TestEscapeTranslation(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"has `ticks`", "has \\`ticks\\`"},
		{"C:\\path", "C:\\\\path"},
		{"cost ${price}", "cost \\${price}"},
		{"just $100", "just $100"},
		{"{name} stays", "{name} stays"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeTranslation(tt.in); got != tt.want {
			t.Errorf("EscapeTranslation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"a", "abc", "camelCase", "with_underscore", "x123"}
	invalid := []string{"", "_lead", "1abc", "has-dash", "has space", "ключ"}

	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("IsValidIdentifier(%q) = true, want false", s)
		}
	}
}
