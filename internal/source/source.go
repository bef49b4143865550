package source

import "github.com/pders01/quip/internal/quotes"

// Source is the data-access capability the search flow depends on.
type Source = quotes.Source
