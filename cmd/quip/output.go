package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/search"
)

// color disables itself when stdout is not a terminal.
var (
	quoteColor  = color.New(color.Bold)
	authorColor = color.New(color.FgCyan, color.Italic)
	topicColor  = color.New(color.FgMagenta)
	errorColor  = color.New(color.FgRed, color.Bold)
)

func printQuotes(w io.Writer, records []quotes.Record) {
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, quoteColor.Sprint("\""+r.Quote+"\""))
		fmt.Fprintln(w, "  "+authorColor.Sprint("— "+r.Author))
	}
}

func printHits(w io.Writer, hits []search.Hit) {
	for _, hit := range hits {
		fmt.Fprintf(w, "%s: %s %s\n",
			topicColor.Sprint(hit.Topic),
			quoteColor.Sprint("\""+hit.Record.Quote+"\""),
			authorColor.Sprint("— "+hit.Record.Author))
	}
}

func printUserError(w io.Writer, message string) {
	errorColor.Fprintln(w, message)
}
