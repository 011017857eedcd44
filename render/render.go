// Package render formats API results as line-oriented console text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/instantnews/instantnews/newsapi"
	"github.com/mitchellh/go-wordwrap"
)

// WrapWidth is the column at which article summaries are wrapped.
const WrapWidth = 100

const separator = "--------------------------------------------"

// Sources writes one "News Code: <id> name" line per source.
func Sources(w io.Writer, sources []newsapi.Source) error {
	for _, s := range sources {
		if _, err := fmt.Fprintf(w, "News Code: <%s> %s\n", s.ID, s.Name); err != nil {
			return err
		}
	}
	return nil
}

// Categories writes each category on its own line.
func Categories(w io.Writer, categories []string) error {
	for _, c := range categories {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Articles writes a block per article in the order given: a separator, the
// title, the wrapped summary and the URL.
func Articles(w io.Writer, articles []newsapi.Article) error {
	for _, a := range articles {
		block := strings.Join([]string{
			"",
			separator,
			"",
			a.Title,
			"",
			"Summary: " + Summary(a.Description, WrapWidth),
			"",
			"URL: " + a.URL,
		}, "\n")
		if _, err := fmt.Fprintln(w, block); err != nil {
			return err
		}
	}
	return nil
}

// Summary wraps description at width columns, or returns "N/A" when there is
// no description. Whitespace runs, newlines included, collapse to one space
// before wrapping, so a description of only whitespace yields "".
func Summary(description string, width uint) string {
	if description == "" {
		return "N/A"
	}
	return wordwrap.WrapString(strings.Join(strings.Fields(description), " "), width)
}
