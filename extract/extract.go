// Package extract pulls the visible text out of HTML documents so it can
// be fed to the splitter.
package extract

import (
	"io"

	splitslices "github.com/mishaprokop4ik/splitspace/pkg/slices"
	"github.com/mishaprokop4ik/splitspace/splitter"
	"golang.org/x/net/html"
)

// void elements never get a closing tag, so they must not open a
// skipped subtree
var voidTags = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "source", "track", "wbr",
}

// Text returns the text fragments of an HTML document, one per text
// node, skipping the contents of the given tags. Fragments that hold
// nothing but whitespace are dropped.
func Text(r io.Reader, skipTags ...string) []string {
	tokenizer := html.NewTokenizer(r)
	fragments := make([]string, 0)
	depth := 0

	for tokenType := tokenizer.Next(); tokenType != html.ErrorToken; tokenType = tokenizer.Next() {
		switch tokenType {
		case html.StartTagToken:
			tagName, _ := tokenizer.TagName()
			if splitslices.Exist(string(tagName), voidTags) {
				continue
			}

			if depth > 0 || splitslices.Exist(string(tagName), skipTags) {
				depth++
			}
		case html.EndTagToken:
			if depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				continue
			}

			text := string(tokenizer.Text())
			if hasWord(text) {
				fragments = append(fragments, text)
			}
		}
	}

	return fragments
}

// Clean collapses every whitespace run in fragment to a single space.
func Clean(fragment string) string {
	return splitter.New(fragment).
		MapWhitespace(func(string) string { return " " }).
		Concat()
}

func hasWord(fragment string) bool {
	s := splitter.New(fragment)
	for segment, ok := s.Next(); ok; segment, ok = s.Next() {
		if segment.Class == splitter.Other {
			return true
		}
	}

	return false
}
