package query

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lexgo/corpus"
)

// SyntaxError reports malformed query text: bracket mismatches,
// malformed literals, unquoted values.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "query: " + e.Msg
}

// UnknownAttributeError reports a literal with an attribute name outside
// word, c5, lemma, pos.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("query: unknown attribute %q", e.Name)
}

// UnknownValueError reports a literal value absent from the corpus
// dictionary. It is only returned in strict mode; lenient parsing marks
// the literal Absent instead.
type UnknownValueError struct {
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("query: value %q does not occur in the corpus", e.Value)
}

// Parse compiles query text against the corpus dictionary. A value not
// present in the dictionary is an UnknownValueError.
func Parse(text string, dict *corpus.Dictionary) (Query, error) {
	return parse(text, dict, false)
}

// ParseLenient is Parse with lenient value lookup: a value not present
// in the dictionary yields a literal with an empty posting list (Absent)
// instead of an error, matching the natural logical reading for both
// polarities.
func ParseLenient(text string, dict *corpus.Dictionary) (Query, error) {
	return parse(text, dict, true)
}

func parse(text string, dict *corpus.Dictionary, lenient bool) (Query, error) {
	parts, err := splitClauses(text)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, &SyntaxError{Msg: "empty query"}
	}

	q := make(Query, 0, len(parts))
	for _, part := range parts {
		cl, err := parseClause(part, dict, lenient)
		if err != nil {
			return nil, err
		}
		q = append(q, cl)
	}
	return q, nil
}

// splitClauses extracts the bracketed clause bodies, rejecting nested
// and unbalanced brackets. Text outside brackets is ignored.
func splitClauses(text string) ([]string, error) {
	var (
		parts    []string
		body     strings.Builder
		inClause bool
	)

	for _, ch := range text {
		switch ch {
		case '[':
			if inClause {
				return nil, &SyntaxError{Msg: "nested or misplaced opening bracket '['"}
			}
			inClause = true
			body.Reset()
		case ']':
			if !inClause {
				return nil, &SyntaxError{Msg: "']' without matching '['"}
			}
			parts = append(parts, body.String())
			inClause = false
		default:
			if inClause {
				body.WriteRune(ch)
			}
		}
	}
	if inClause {
		return nil, &SyntaxError{Msg: "missing closing bracket"}
	}
	return parts, nil
}

func parseClause(text string, dict *corpus.Dictionary, lenient bool) (Clause, error) {
	var cl Clause
	for _, field := range strings.Fields(text) {
		lit, err := parseLiteral(field, dict, lenient)
		if err != nil {
			return nil, err
		}
		cl = append(cl, lit)
	}
	return cl, nil
}

func parseLiteral(text string, dict *corpus.Dictionary, lenient bool) (Literal, error) {
	var (
		lit Literal
		op  = "!="
		pos = strings.Index(text, op)
	)
	if pos < 0 {
		op = "="
		pos = strings.Index(text, op)
	}
	if pos < 0 {
		return lit, &SyntaxError{Msg: fmt.Sprintf("cannot parse literal %q", text)}
	}
	lit.Equal = op == "="

	attr, ok := corpus.ParseAttribute(text[:pos])
	if !ok {
		return lit, &UnknownAttributeError{Name: text[:pos]}
	}
	lit.Attr = attr

	value, err := unquote(text[pos+len(op):])
	if err != nil {
		return lit, err
	}

	id, ok := dict.Lookup(value)
	if !ok {
		if !lenient {
			return lit, &UnknownValueError{Value: value}
		}
		lit.Absent = true
		return lit, nil
	}
	lit.Value = id
	return lit, nil
}

func unquote(s string) (string, error) {
	if len(s) > 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1], nil
	}
	return "", &SyntaxError{Msg: fmt.Sprintf("value %s is missing one or more quotes", s)}
}
