// FILE: lixenwraith/buflog/sanitizer/sanitizer.go
// Package sanitizer cleans log entry text before it is stamped into the buffer.
//
// A Sanitizer holds an ordered list of rules. Each rule pairs a character
// class (filter) with what happens to a matching rune (transform). The first
// rule whose class matches a rune decides its fate; runes no rule matches are
// copied unchanged.
package sanitizer

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Character classes
const (
	FilterNonPrintable uint64 = 1 << iota // !strconv.IsPrint: controls, format runes, NBSP and friends
	FilterControl                         // unicode.IsControl: C0, DEL and C1
)

// Transforms
const (
	TransformStrip     uint64 = 1 << iota // drop the rune
	TransformHexEncode                    // write the rune's UTF-8 bytes as "<hh..>"
)

// PolicyPreset names a built-in rule set, selected by the "sanitize" setting
type PolicyPreset string

const (
	PolicyRaw   PolicyPreset = "raw"   // entries are written exactly as given
	PolicyTxt   PolicyPreset = "txt"   // hex-encode every non-printable rune
	PolicyStrip PolicyPreset = "strip" // drop control runes such as embedded newlines
)

type rule struct {
	class     uint64
	transform uint64
}

var presets = map[PolicyPreset][]rule{
	PolicyRaw:   nil,
	PolicyTxt:   {{class: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyStrip: {{class: FilterControl, transform: TransformStrip}},
}

// classes is checked in order, so a rune's match does not depend on map iteration
var classes = []struct {
	flag  uint64
	match func(rune) bool
}{
	{FilterNonPrintable, func(r rune) bool { return !strconv.IsPrint(r) }},
	{FilterControl, unicode.IsControl},
}

const hexDigits = "0123456789abcdef"

// Sanitizer rewrites entry text according to its rules.
// It reuses an internal buffer and is not safe for concurrent use.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New returns a Sanitizer without rules, which leaves text untouched
func New() *Sanitizer {
	return &Sanitizer{}
}

// Known reports whether preset is a built-in policy
func Known(preset PolicyPreset) bool {
	_, ok := presets[preset]
	return ok
}

// Rule appends a rule. Rules added earlier take precedence.
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{class: filter, transform: transform})
	return s
}

// Policy appends the rules of a built-in preset; unknown presets add nothing
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	s.rules = append(s.rules, presets[preset]...)
	return s
}

// Passthrough reports whether Sanitize would always return its input
func (s *Sanitizer) Passthrough() bool {
	return len(s.rules) == 0
}

// Sanitize returns entry with every rule applied. Entries no rule touches
// are returned as is, without copying.
func (s *Sanitizer) Sanitize(entry string) string {
	if s.Passthrough() {
		return entry
	}

	// Find the first rune that needs work
	start := -1
	for i, r := range entry {
		if s.ruleFor(r) != nil {
			start = i
			break
		}
	}
	if start < 0 {
		return entry
	}

	s.buf = append(s.buf[:0], entry[:start]...)
	for _, r := range entry[start:] {
		rl := s.ruleFor(r)
		if rl == nil {
			s.buf = utf8.AppendRune(s.buf, r)
			continue
		}
		s.buf = apply(s.buf, r, rl.transform)
	}
	return string(s.buf)
}

// ruleFor returns the first rule matching r, or nil
func (s *Sanitizer) ruleFor(r rune) *rule {
	for i := range s.rules {
		for _, c := range classes {
			if s.rules[i].class&c.flag != 0 && c.match(r) {
				return &s.rules[i]
			}
		}
	}
	return nil
}

func apply(buf []byte, r rune, transform uint64) []byte {
	switch {
	case transform&TransformStrip != 0:
		return buf
	case transform&TransformHexEncode != 0:
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], r)
		buf = append(buf, '<')
		for _, b := range enc[:n] {
			buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0f])
		}
		return append(buf, '>')
	default:
		return utf8.AppendRune(buf, r)
	}
}
