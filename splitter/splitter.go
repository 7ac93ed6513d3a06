package splitter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Class int

const (
	Whitespace Class = iota
	Other
)

// String returns a string representation of the Class.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "Whitespace"
	case Other:
		return "Other"
	}

	return "Invalid(" + strconv.Itoa(int(c)) + ")"
}

// Segment is a maximal run of characters that are either all whitespace
// or all non-whitespace. Text is a sub-slice of the original input.
type Segment struct {
	Class Class
	Text  string
}

// Splitter iterates over the whitespace and non-whitespace sub-strings
// of a string. Whitespace is defined by unicode.IsSpace.
type Splitter struct {
	pending Segment
	done    bool
}

func New(content string) *Splitter {
	if content == "" {
		return &Splitter{done: true}
	}

	first, _ := utf8.DecodeRuneInString(content)
	class := Other
	if unicode.IsSpace(first) {
		class = Whitespace
	}

	return &Splitter{pending: Segment{Class: class, Text: content}}
}

// Next returns the next Segment. The second value is false once the
// input is exhausted.
func (s *Splitter) Next() (Segment, bool) {
	if s.done {
		return Segment{}, false
	}

	var i int
	if s.pending.Class == Whitespace {
		i = strings.IndexFunc(s.pending.Text, isNotSpace)
	} else {
		i = strings.IndexFunc(s.pending.Text, unicode.IsSpace)
	}

	if i == -1 {
		s.done = true
		return s.pending, true
	}

	segment := Segment{Class: s.pending.Class, Text: s.pending.Text[:i]}
	s.pending = Segment{Class: opposite(s.pending.Class), Text: s.pending.Text[i:]}

	return segment, true
}

// All returns all remaining segments.
func (s *Splitter) All() []Segment {
	segments := []Segment{}
	for segment, ok := s.Next(); ok; segment, ok = s.Next() {
		segments = append(segments, segment)
	}

	return segments
}

func opposite(c Class) Class {
	if c == Whitespace {
		return Other
	}

	return Whitespace
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
