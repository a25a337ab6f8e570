// Package corpus holds the immutable in-memory representation of an
// annotated token corpus: the string dictionary, the flat token store,
// the sentence directory and the four attribute indices.
//
// A Corpus is built once (see Read and Build) and is read-only
// afterwards, so concurrent readers need no synchronization.
package corpus

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Attribute identifies one of the four categorical features carried by
// every token.
type Attribute uint8

const (
	// AttrWord is the surface form.
	AttrWord Attribute = iota
	// AttrC5 is the CLAWS C5 part-of-speech tag.
	AttrC5
	// AttrLemma is the lemma.
	AttrLemma
	// AttrPOS is the simplified part-of-speech tag.
	AttrPOS

	numAttributes = 4
)

var attributeNames = [numAttributes]string{"word", "c5", "lemma", "pos"}

// String returns the deployment name of the attribute.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "invalid"
}

// ParseAttribute resolves a deployment attribute name (word, c5, lemma,
// pos). ok is false for unknown names.
func ParseAttribute(name string) (Attribute, bool) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), true
		}
	}
	return 0, false
}

// Token is one corpus position: four dictionary identifiers. Field
// order matches the corpus input format and is part of the data
// contract.
type Token struct {
	Word  uint32
	C5    uint32
	Lemma uint32
	POS   uint32
}

// Attr returns the identifier of the given attribute.
//
// Calling it with an out-of-range attribute is a programmer error and
// panics; an unknown attribute VALUE, by contrast, is an ordinary
// lookup miss.
func (t Token) Attr(a Attribute) uint32 {
	switch a {
	case AttrWord:
		return t.Word
	case AttrC5:
		return t.C5
	case AttrLemma:
		return t.Lemma
	case AttrPOS:
		return t.POS
	default:
		panic("corpus: unknown attribute " + a.String())
	}
}

// Corpus is the immutable bundle of dictionary, tokens, sentence
// directory and attribute indices.
type Corpus struct {
	tokens    []Token
	sentences []int // ascending first-token positions, sentences[0] == 0
	dict      *Dictionary
	indices   [numAttributes][]int
}

// Build assembles a Corpus from pre-tokenized data and builds the
// attribute indices. sentences must be strictly ascending first-token
// positions starting at 0; dict must cover every identifier in tokens.
//
// The four indices are independent stable sorts, built concurrently.
func Build(tokens []Token, sentences []int, dict *Dictionary) *Corpus {
	c := &Corpus{
		tokens:    tokens,
		sentences: sentences,
		dict:      dict,
	}

	var g errgroup.Group
	for a := Attribute(0); a < numAttributes; a++ {
		g.Go(func() error {
			c.indices[a] = buildIndex(tokens, a)
			return nil
		})
	}
	_ = g.Wait() // index builds cannot fail

	return c
}

// buildIndex returns a permutation of 0..len(tokens)-1, stably sorted by
// the attribute identifier. Stability keeps equal-value runs in corpus
// order, so every lookup window is sorted ascending by position.
func buildIndex(tokens []Token, a Attribute) []int {
	index := make([]int, len(tokens))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(i, j int) bool {
		return tokens[index[i]].Attr(a) < tokens[index[j]].Attr(a)
	})
	return index
}

// Len returns the number of tokens.
func (c *Corpus) Len() int { return len(c.tokens) }

// Token returns the token at the given position.
func (c *Corpus) Token(pos int) Token { return c.tokens[pos] }

// Dict returns the corpus dictionary.
func (c *Corpus) Dict() *Dictionary { return c.dict }

// Sentences returns the number of sentences.
func (c *Corpus) Sentences() int { return len(c.sentences) }

// SentenceOf returns the index of the sentence containing pos: the
// largest k with start(k) <= pos, found by upper-bound search.
func (c *Corpus) SentenceOf(pos int) int {
	return sort.Search(len(c.sentences), func(k int) bool {
		return c.sentences[k] > pos
	}) - 1
}

// SentenceSpan returns the half-open position range [start, end) of
// sentence k.
func (c *Corpus) SentenceSpan(k int) (start, end int) {
	start = c.sentences[k]
	end = len(c.tokens)
	if k+1 < len(c.sentences) {
		end = c.sentences[k+1]
	}
	return start, end
}

// Lookup returns the window of the attribute index whose tokens carry
// the given identifier, located with two binary searches. The window is
// sorted ascending by position, is empty when no token matches, and
// borrows from the index: it must not outlive the Corpus.
func (c *Corpus) Lookup(a Attribute, id uint32) []int {
	index := c.indices[a] // panics on invalid attribute, by contract

	first := sort.Search(len(index), func(k int) bool {
		return c.tokens[index[k]].Attr(a) >= id
	})
	last := sort.Search(len(index), func(k int) bool {
		return c.tokens[index[k]].Attr(a) > id
	})
	return index[first:last]
}
