package splitter_test

import (
	"strings"
	"testing"

	"github.com/mishaprokop4ik/splitspace/splitter"
	"github.com/stretchr/testify/assert"
)

func TestSplitterNext(t *testing.T) {
	s := splitter.New("aa  ")

	segment, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, splitter.Segment{Class: splitter.Other, Text: "aa"}, segment)

	segment, ok = s.Next()
	assert.True(t, ok)
	assert.Equal(t, splitter.Segment{Class: splitter.Whitespace, Text: "  "}, segment)

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestSplitterEmpty(t *testing.T) {
	s := splitter.New("")

	assert.Equal(t, []splitter.Segment{}, s.All())
}

func TestSplitterOnlyWhitespace(t *testing.T) {
	s := splitter.New("   ")

	expected := []splitter.Segment{
		{Class: splitter.Whitespace, Text: "   "},
	}

	assert.Equal(t, expected, s.All())
}

func TestSplitterLeadingWhitespace(t *testing.T) {
	s := splitter.New("\t\nhello world ")

	expected := []splitter.Segment{
		{Class: splitter.Whitespace, Text: "\t\n"},
		{Class: splitter.Other, Text: "hello"},
		{Class: splitter.Whitespace, Text: " "},
		{Class: splitter.Other, Text: "world"},
		{Class: splitter.Whitespace, Text: " "},
	}

	assert.Equal(t, expected, s.All())
}

func TestSplitterRoundTrip(t *testing.T) {
	contents := []string{
		"",
		" ",
		"aa  ",
		"Line\twith\nweird whitespace",
		"  leading and trailing\t",
		"héllo\u00a0wörld",
		"один два\tтри",
	}

	for _, content := range contents {
		b := strings.Builder{}
		s := splitter.New(content)
		for segment, ok := s.Next(); ok; segment, ok = s.Next() {
			b.WriteString(segment.Text)
		}

		assert.Equal(t, content, b.String())
	}
}

func TestSplitterAlternation(t *testing.T) {
	segments := splitter.New("  a b\tcc \n d  ").All()

	for i := 1; i < len(segments); i++ {
		assert.NotEqual(t, segments[i-1].Class, segments[i].Class)
	}
}

func TestSplitterUnicodeSpace(t *testing.T) {
	// U+00A0 no-break space counts as whitespace
	s := splitter.New("héllo\u00a0wörld")

	expected := []splitter.Segment{
		{Class: splitter.Other, Text: "héllo"},
		{Class: splitter.Whitespace, Text: "\u00a0"},
		{Class: splitter.Other, Text: "wörld"},
	}

	assert.Equal(t, expected, s.All())
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "Whitespace", splitter.Whitespace.String())
	assert.Equal(t, "Other", splitter.Other.String())
	assert.Equal(t, "Invalid(7)", splitter.Class(7).String())
}
