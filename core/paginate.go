package core

import (
	"strconv"
)

// A Page is one bounded view into an ordered post list.
type Page struct {
	Posts  []*Post
	Number int // 1-based
	Total  int // number of pages, at least 1
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.Total
}

// Paginate slices posts into pages of perPage records and returns the requested
// page, preserving the input order. The page argument comes from the query string:
// non-numeric values and values below 1 yield the first page, values beyond the
// last page yield the last page. An empty input yields one empty page.
func Paginate(posts []*Post, perPage int, pageArg string) Page {

	if perPage < 1 {
		perPage = 1
	}

	var total = (len(posts) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}

	number, err := strconv.Atoi(pageArg)
	if err != nil || number < 1 {
		number = 1
	}
	if number > total {
		number = total
	}

	var from = (number - 1) * perPage
	var to = from + perPage
	if from > len(posts) {
		from = len(posts)
	}
	if to > len(posts) {
		to = len(posts)
	}

	return Page{
		Posts:  posts[from:to],
		Number: number,
		Total:  total,
	}
}
