package tui

import (
	"strings"
	"testing"
)

func TestWrap_ShortText(t *testing.T) {
	result := Wrap("missing return", 20)
	if result != "missing return" {
		t.Errorf("expected 'missing return', got '%s'", result)
	}
}

func TestWrap_ExactWidth(t *testing.T) {
	result := Wrap("missing return", 14)
	if result != "missing return" {
		t.Errorf("expected 'missing return', got '%s'", result)
	}
}

func TestWrap_MultipleLines(t *testing.T) {
	text := "value of type 'Int' has no member 'foo' in this context"
	width := 15
	lines := strings.Split(Wrap(text, width), "\n")

	if len(lines) < 3 {
		t.Errorf("expected at least 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := VisualWidth(line); w > width {
			t.Errorf("line %d exceeds width %d: width=%d, content='%s'", i, width, w, line)
		}
	}
}

func TestWrap_LongPath(t *testing.T) {
	text := "/Users/dev/Library/Developer/Xcode/DerivedData/App-abcdefghijkl/Build/Intermediates.noindex/App.build/Debug-iphonesimulator/App.build/Objects-normal/arm64/AppDelegate.o"
	width := 40

	result := Wrap(text, width)
	lines := strings.Split(result, "\n")

	if len(lines) < 2 {
		t.Errorf("expected long path to be broken into multiple lines, got %d lines", len(lines))
	}
	for i, line := range lines {
		if w := VisualWidth(line); w > width {
			t.Errorf("line %d exceeds width %d: width=%d, content='%s'", i, width, w, line)
		}
	}

	if reconstructed := strings.ReplaceAll(result, "\n", ""); reconstructed != text {
		t.Errorf("content was modified during wrapping\nexpected: %s\ngot:      %s", text, reconstructed)
	}
}

func TestWrap_WideRunes(t *testing.T) {
	text := "cannot find '変数名前' in scope"
	width := 6

	for i, line := range strings.Split(Wrap(text, width), "\n") {
		if w := VisualWidth(line); w > width {
			t.Errorf("line %d exceeds width %d: width=%d, content='%s'", i, width, w, line)
		}
	}
}

func TestWrap_ZeroWidth(t *testing.T) {
	if result := Wrap("error: boom", 0); result != "error: boom" {
		t.Errorf("expected text unchanged, got '%s'", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		ellipsis bool
		expected string
	}{
		{"short", 10, true, "short"},
		{"  padded  ", 10, true, "padded"},
		{"exactly10!", 10, true, "exactly10!"},
		{"this is too long", 10, true, "this is..."},
		{"this is too long", 10, false, "this is to"},
		{"abc", 0, true, ""},
		{"abcdef", 3, true, "abc"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
			t.Errorf("Truncate(%q, %d, %v) = %q, want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("abc", 6, true)
	if got != "abc   " {
		t.Errorf("expected padded 'abc   ', got %q", got)
	}

	got = TruncateAndPad("/src/Foo.swift:10:5", 10, true)
	if VisualWidth(got) != 10 {
		t.Errorf("expected width 10, got %d (%q)", VisualWidth(got), got)
	}
}
