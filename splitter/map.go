package splitter

import "strings"

// Mapper rewrites the segments of one class with a caller-supplied
// function and passes the other class through unchanged.
type Mapper struct {
	splitter *Splitter
	class    Class
	apply    func(string) string
}

// MapWords returns a Mapper over the non-whitespace segments.
//
//	splitter.New("Line\twith\nweird whitespace").MapWords(reverse).Concat()
//
// gives "eniL\thtiw\ndriew ecapsetihw" when reverse flips a word's runes.
func (s *Splitter) MapWords(f func(string) string) *Mapper {
	return &Mapper{splitter: s, class: Other, apply: f}
}

// MapWhitespace returns a Mapper over the whitespace segments.
func (s *Splitter) MapWhitespace(f func(string) string) *Mapper {
	return &Mapper{splitter: s, class: Whitespace, apply: f}
}

// Next returns the next mapped fragment. The second value is false once
// the underlying Splitter is exhausted.
func (m *Mapper) Next() (string, bool) {
	segment, ok := m.splitter.Next()
	if !ok {
		return "", false
	}

	if segment.Class == m.class {
		return m.apply(segment.Text), true
	}

	return segment.Text, true
}

// All returns all remaining mapped fragments.
func (m *Mapper) All() []string {
	fragments := []string{}
	for fragment, ok := m.Next(); ok; fragment, ok = m.Next() {
		fragments = append(fragments, fragment)
	}

	return fragments
}

// Concat joins all remaining mapped fragments into one string.
func (m *Mapper) Concat() string {
	b := strings.Builder{}
	for fragment, ok := m.Next(); ok; fragment, ok = m.Next() {
		b.WriteString(fragment)
	}

	return b.String()
}
