package web

import (
	"html/template"
	"strings"

	"github.com/werres/journal/util"
	"gitlab.com/golang-commonmark/markdown"
)

// HTML(false) because post authors are not trusted with raw markup
var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// renderMarkdown translates post text to HTML.
func renderMarkdown(text string) template.HTML {
	return template.HTML(markdownParser.RenderToString([]byte(text)))
}

const excerptRunes = 200

// excerpt returns the beginning of the rendered post text, markup stripped.
func excerpt(text string) string {
	var rendered = string(renderMarkdown(text))
	return util.Trunc(util.TextContent(strings.NewReader(rendered)), excerptRunes)
}
