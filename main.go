package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mishaprokop4ik/splitspace/splitter"
)

// reads text from stdin and prints it with every whitespace run
// collapsed to a single space
func main() {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	cleaned := splitter.New(string(content)).
		MapWhitespace(func(string) string { return " " }).
		Concat()

	fmt.Println(cleaned)
}
