package dotenv

//go:generate go tool stringer --linecomment --type Quote,LineKind,Format --output string.go

// Quote identifies how an entry's value was quoted in the source text.
type Quote int

const (
	QuoteNone   Quote = iota // none
	QuoteSingle              // single
	QuoteDouble              // double
)

// Expandable reports whether values with quote style q are subject to
// variable expansion.
func (q Quote) Expandable() bool { return q == QuoteDouble }
