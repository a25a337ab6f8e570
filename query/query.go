// Package query defines the compiled query model and the parser for the
// bracketed query language:
//
//	[word="the"] [] [lemma="house" pos!="VERB"]
//
// A query is an ordered sequence of clauses; the clause at index j
// constrains the token at position p+j for every candidate match start
// p. A clause is an unordered conjunction of literals; an empty clause
// matches any token.
package query

import (
	"strings"

	"github.com/hupe1980/lexgo/corpus"
)

// Literal is a single attribute constraint. Value is a dictionary
// identifier resolved at compile time. Absent marks a lenient-mode
// literal whose value string was not in the dictionary; its posting
// list is empty by definition.
type Literal struct {
	Attr   corpus.Attribute
	Value  uint32
	Equal  bool
	Absent bool
}

// Clause is a conjunction of literals constraining one token.
type Clause []Literal

// Query is an ordered sequence of clauses. The match length equals
// len(query).
type Query []Clause

// String renders the query back in source syntax. Absent values render
// as the empty string since their text is not retained.
func (q Query) String(dict *corpus.Dictionary) string {
	var b strings.Builder
	for j, cl := range q {
		if j > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for i, lit := range cl {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(lit.Attr.String())
			if !lit.Equal {
				b.WriteByte('!')
			}
			b.WriteByte('=')
			b.WriteByte('"')
			if !lit.Absent {
				b.WriteString(dict.Reveal(lit.Value))
			}
			b.WriteByte('"')
		}
		b.WriteByte(']')
	}
	return b.String()
}
