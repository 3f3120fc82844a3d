package util

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TextContent extracts the text of an HTML fragment, collapsing whitespace.
// It reads at most the first few kilobytes of input.
func TextContent(input io.Reader) string {

	tokenizer := html.NewTokenizerFragment(input, "body")
	tokenizer.SetMaxBuf(4096) // roughly the maximum number of bytes tokenized

	var b strings.Builder

	for {

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}

		if tt == html.TextToken {
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}

		if b.Len() > 4000 {
			break
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
