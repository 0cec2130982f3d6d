package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Diagnostic
	}{
		{
			input: "/src/Foo.swift:10:5: error: missing return",
			expected: Diagnostic{
				Raw: "/src/Foo.swift:10:5: error: missing return", File: "/src/Foo.swift",
				Line: 10, Column: 5, Severity: "error", Message: "missing return",
			},
		},
		{
			input: "/src/Foo.h:1:9: fatal error: 'Bar.h' file not found",
			expected: Diagnostic{
				Raw: "/src/Foo.h:1:9: fatal error: 'Bar.h' file not found", File: "/src/Foo.h",
				Line: 1, Column: 9, Severity: "fatal error", Message: "'Bar.h' file not found",
			},
		},
		{
			input: "ld: error: undefined symbol: _main",
			expected: Diagnostic{
				Raw: "ld: error: undefined symbol: _main", Severity: "error", Message: "undefined symbol: _main",
			},
		},
		{
			input: "Command CompileSwift failed with a nonzero exit code",
			expected: Diagnostic{
				Raw: "Command CompileSwift failed with a nonzero exit code", Severity: "error",
				Message: "Command CompileSwift failed with a nonzero exit code",
			},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Parse(tt.input), tt.input)
	}
}

func TestDiagnosticLocation(t *testing.T) {
	d := Parse("/src/Foo.swift:10:5: error: missing return")
	assert.True(t, d.HasLocation())
	assert.Equal(t, "/src/Foo.swift:10:5", d.Location())

	bare := Parse("error: boom")
	assert.False(t, bare.HasLocation())
	assert.Equal(t, "", bare.Location())
	assert.Equal(t, "boom", bare.Message)

	all := ParseAll([]string{"error: a", "error: b"})
	assert.Len(t, all, 2)
}
