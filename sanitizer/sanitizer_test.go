// FILE: lixenwraith/buflog/sanitizer/sanitizer_test.go
package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09form\x0c",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>form<0c>",
		},
		{
			name:     "txt hex encodes multi-byte control",
			input:    "line1\u0085line2",
			policy:   PolicyTxt,
			expected: "line1<c285>line2",
		},
		{
			name:     "txt preserves printable and UTF-8",
			input:    "Hello 世界 ✓ 123!@#",
			policy:   PolicyTxt,
			expected: "Hello 世界 ✓ 123!@#",
		},
		{
			name:     "strip removes control chars",
			input:    "clean\x00\x07\ntxt",
			policy:   PolicyStrip,
			expected: "cleantxt",
		},
		{
			name:     "strip preserves spaces",
			input:    "hello world",
			policy:   PolicyStrip,
			expected: "hello world",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.policy)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestSanitizerRuleOrder(t *testing.T) {
	// Strip wins because it was added first
	s := New().
		Rule(FilterControl, TransformStrip).
		Rule(FilterNonPrintable, TransformHexEncode)

	assert.Equal(t, "ab<c2a0>", s.Sanitize("a\nb\u00a0"))
}

func TestSanitizerReuse(t *testing.T) {
	s := New().Policy(PolicyTxt)

	first := s.Sanitize("one\x01")
	second := s.Sanitize("two")

	assert.Equal(t, "one<01>", first)
	assert.Equal(t, "two", second)
}

func TestKnownAndPassthrough(t *testing.T) {
	assert.True(t, Known(PolicyRaw))
	assert.True(t, Known(PolicyTxt))
	assert.True(t, Known(PolicyStrip))
	assert.False(t, Known("json"))

	assert.True(t, New().Policy(PolicyRaw).Passthrough())
	assert.False(t, New().Policy(PolicyTxt).Passthrough())
}

func TestSanitizerCleanEntryUnchanged(t *testing.T) {
	s := New().Policy(PolicyTxt)
	assert.Equal(t, "GET /index.html 200", s.Sanitize("GET /index.html 200"))
	// Clean prefix is kept when a later rune needs encoding
	assert.Equal(t, "GET /a<0a>", s.Sanitize("GET /a\n"))
}

func TestUnknownPolicyAddsNoRules(t *testing.T) {
	s := New().Policy("json")
	assert.True(t, s.Passthrough())
	assert.Equal(t, "a\x00b", s.Sanitize("a\x00b"))
}
